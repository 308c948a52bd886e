// Package server hosts chooser sessions over HTTP.
//
// Each session is an independent chooser.Session for the server's
// definition, addressed by a random UUID. Events for one session are
// serialized by a per-session mutex; different sessions proceed in parallel.
// Idle sessions expire after the configured TTL and the number of live
// sessions is capped (see WithSessionTTL and WithMaxSessions).
//
// HTTP API
//
//	GET /healthz
//	    Liveness check.
//
//	GET /definition
//	    The definition, its fingerprint and the flat list of controls.
//
//	POST /sessions
//	    Start a session in the definition's initial state. Returns the
//	    Snapshot with its session ID (201), or 503 when the session limit
//	    is reached.
//
//	GET /sessions/{id}
//	    Current Snapshot of the session.
//
//	POST /sessions/{id}/events  { "events": [Event, ...] }
//	    Apply events in order and return the recompiled Snapshot. A bad
//	    event rejects the whole batch with 400 and leaves the session as it
//	    was.
//
//	POST /sessions/{id}/reset
//	    Return the session to the initial state.
//
//	DELETE /sessions/{id}
//	    Forget the session (204).
//
// Errors are JSON objects with a "message" field. Unknown sessions yield 404.
package server
