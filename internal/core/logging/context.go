package logging

import "context"

type contextKey string

const (
	documentKey contextKey = "document"
	sessionKey  contextKey = "session"
)

// WithDocument adds the path of the document being edited to the context.
func WithDocument(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, documentKey, path)
}

// WithSession adds an editing session ID to the context.
func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey, id)
}

// GetDocument retrieves the document path from the context.
// Returns empty string if not present.
func GetDocument(ctx context.Context) string {
	if p, ok := ctx.Value(documentKey).(string); ok {
		return p
	}
	return ""
}

// GetSession retrieves the editing session ID from the context.
// Returns empty string if not present.
func GetSession(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey).(string); ok {
		return id
	}
	return ""
}
