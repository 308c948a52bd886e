// Package client implements domain.ChooserClient over chooserd's HTTP JSON
// API. It is used by the CLI when a --server URL is configured.
package client
