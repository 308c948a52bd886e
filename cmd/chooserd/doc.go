// Package main runs chooserd, the HTTP server that hosts trychooser sessions
// for one definition file.
//
// Usage
//
//	chooserd --definition try.yaml [--host localhost] [--port 8080]
//
// Sessions are held in memory and lost on exit. A session idle for longer
// than --session-ttl (default 24h) is dropped, and at most --max-sessions
// (default 10000) live at once; POST /sessions answers 503 beyond that.
//
// See package trychooser/internal/server for the HTTP API. SIGINT and SIGTERM
// trigger a graceful shutdown bounded by --shutdown-timeout.
package main
