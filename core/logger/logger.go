// Package logger emits session events as newline delimited JSON.
package logger

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewSessionID returns a fresh identifier to correlate the events of
// one shell session.
func NewSessionID() string {
	return uuid.NewString()
}

// New returns a logger that writes one JSON object per line to w, each
// carrying the given session ID.
func New(w io.Writer, sessionID string) *slog.Logger {
	handler := slog.NewJSONHandler(w, nil)
	return slog.New(handler).With("session_id", sessionID)
}

// Discard returns a logger whose output goes nowhere. Used when no log
// file is configured.
func Discard() *slog.Logger {
	return New(io.Discard, "")
}
