// Package selection implements the local selection service: a chooser
// session whose state survives between CLI invocations.
//
// Every call loads the state saved for the definition's fingerprint (if
// any), restores it into a fresh session, applies the requested events and
// saves the result back. A state saved for a different definition is never
// applied because the fingerprint differs.
package selection
