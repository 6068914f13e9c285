// Package main is the entry point for the Rankwala scoring server.
//
// The server fetches published exam answer-key pages, scores the candidate's
// responses under the +1 / -1/3 marking rule, and archives a redacted copy of
// each key it sees.
//
// The server provides:
//   - REST API for scoring answer-key URLs
//   - Listing, download and deletion of archived keys
//   - A server-side image proxy for exam header images
//   - Prometheus metrics and rate limiting
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
