// Package mcp provides an MCP (Model Context Protocol) server adapter for docq.
// It enables AI assistants to query an indexed document corpus.
package mcp

import "errors"

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")
