// Package commands defines the trychooser CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init          Start a fresh selection and print it
//   - show          Print the current try syntax
//   - check         Check one or more controls
//   - uncheck       Uncheck one or more controls
//   - select        Choose a value for a radio control
//   - reset         Return to the definition's initial selection
//   - fingerprint   Print the definition fingerprint
//   - controls      List every control of the definition
//
// # Implementation
//
// The root command builds a zap logger and the app dependency graph before
// any subcommand runs. With --server the selection lives in a chooserd
// session; otherwise it is kept in the home directory, keyed by the
// fingerprint of the --definition file.
package commands
