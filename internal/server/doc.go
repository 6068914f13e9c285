// Package server assembles the scoring service: configuration, logging,
// metrics, the answer-key pipeline, the archive store and all HTTP routes.
package server
