// Package chooser ties the reconciler and the compiler into a session.
//
// A Session owns one selection state for one definition. Every call to Apply
// runs the fixed pipeline for each event in order (leaf mutation, subgroup
// sync, group sync) and compiles once at the end. A failing event aborts the
// whole batch and leaves the state untouched.
//
// Sessions are not safe for concurrent use; callers serialize events, the
// way a page serializes user input.
package chooser
