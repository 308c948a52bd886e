// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores, the chooserd client and the selection
// service from Config, exposing them via the Wire struct. App layers the
// commands' view on top: in local mode selections are loaded from and saved
// to the state store for the configured definition file; in remote mode
// (ServerURL set) they live in a chooserd session whose ID is remembered per
// server in the home directory.
package app
