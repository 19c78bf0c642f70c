// Package server provides the HTTP server for the thema API.
//
// The architecture follows the pattern: CLI → Server → Router → Handlers → Query service:
//
//   - Server: configuration, lifecycle and graceful shutdown
//   - Router: chi routes and the middleware chain
//   - Handlers: HTTP adapters over query.Service
//   - Response: the single place errors become JSON bodies
//
// Usage:
//
//	repo, err := codes.Load(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	srv, err := server.New(query.New(repo), logger, server.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = srv.ListenAndServe(ctx)
package server

//go:generate gomarkdoc --output README.md .
