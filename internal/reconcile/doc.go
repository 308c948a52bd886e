// Package reconcile keeps a group's aggregate selectors consistent with its
// members.
//
// Every group has an all-selector and a none-selector; a subgroup has its own
// all-selector which also counts as a default member of the enclosing group.
// After any event the following hold:
//
//   - <group>/none is checked iff no member is checked
//   - <group>/all is checked iff no default member is unchecked
//   - a subgroup selector is checked iff none of its default options is unchecked
//
// # Implementation
//
// An event is handled in two phases. The forcing phase applies what the user
// asked for: checking an all-selector checks every default member, checking a
// none-selector unchecks everything, checking a subgroup selector checks that
// subgroup's default options. The sync phase then recomputes the aggregates,
// subgroups before their group, and never forces members. Keeping the phases
// apart is what stops a forced member change from being read back as a user
// change.
package reconcile
