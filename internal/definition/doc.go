// Package definition loads, normalises and validates chooser definitions.
//
// Definitions are static: they list the radios, option groups, subgroups,
// filter controls and the profiling toggle a chooser is built from. They can
// be written in YAML or HCL; Load picks the decoder from the file extension.
//
// After decoding, defaults are filled in (an option's ID defaults to its
// value, a subgroup's token to its name, a radio's name to its section, the
// primary section to "p") and the result is validated. Validation reports
// every problem at once.
//
// Fingerprint returns a short digest of a normalised definition; saved
// selection state is keyed by it.
package definition
