// Package http exposes the scoring API: answer-key scoring, the saved-key
// archive and the image proxy.
package http
