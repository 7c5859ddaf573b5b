package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the document path and session ID from the event
// context onto the log event.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if doc := GetDocument(ctx); doc != "" {
		e.Str("document", doc)
	}

	if id := GetSession(ctx); id != "" {
		e.Str("session", id)
	}
}
