// Package filter resolves signed filter tokens into the minimal set appended
// to try syntax names.
//
// A token is either "name" (include) or "-name" (exclude). Inclusions are
// collected first; exclusions are then applied in order, cancelling a matching
// inclusion or, when there is nothing to cancel, surviving as a literal
// "-name" so the exclusion still applies downstream. This lets expressions
// such as "all Windows builds except debug" collapse instead of piling up
// contradictory pairs.
package filter
