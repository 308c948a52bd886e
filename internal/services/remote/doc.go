// Package remote implements the selection service on top of a chooserd
// session, so the CLI behaves the same whether it keeps state locally or on
// a server.
package remote
