//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/thema --repository.default-branch master --repository.path /

// Package thema provides read-only access to the Thema subject category code
// list: loading the source document, looking codes up case-insensitively,
// walking the parent hierarchy, and searching and paging the list.
//
// The HTTP API and CLI built on this package live under cmd/thema.
package thema
