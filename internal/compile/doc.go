// Package compile turns a reconciled selection state into try syntax.
//
// The output has the shape
//
//	try: [-<section> <value|list[,value...][filters]>]* [mozharness: --spsProfile]
//
// Sectioned radios come first, then email-style radios, then one argument per
// sectioned group, then the profiling flag. When the primary section (usually
// "p") resolves to "none" the whole string is replaced by a warning sentinel
// and Result.NoneChosen is set.
//
// Compile is a pure function of the definition and the state: calling it
// twice on the same state yields the same Result.
package compile
