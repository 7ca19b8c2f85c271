package ezcms

import "context"

// Cursor is the opaque position marker returned by the content API in a
// collection response. Provided on a follow-up listing, it resumes
// retrieval at the next page.
type Cursor = string

// CursorTokenProvider provides a method for converting an API cursor into
// an opaque token safe to hand to end clients.
type CursorTokenProvider interface {
	// GetCursorToken gets the opaque token for the provided [Cursor].
	GetCursorToken(context.Context, Cursor) (string, error)
}

// GetCursorToken gets the opaque token for the provided [Cursor].
// If the cursor is empty, an empty string is returned.
func GetCursorToken(ctx context.Context, provider CursorTokenProvider, cursor Cursor) (string, error) {
	if cursor == "" {
		return "", nil
	}
	return provider.GetCursorToken(ctx, cursor)
}

// CursorProvider provides a method for converting an opaque token back
// to the [Cursor] used for content API pagination.
type CursorProvider interface {
	// GetCursor gets the cursor from the provided token.
	GetCursor(ctx context.Context, token string) (Cursor, error)
}

// GetCursor gets the cursor from the provided token.
// If the token is empty, an empty cursor is returned.
func GetCursor(ctx context.Context, provider CursorProvider, token string) (Cursor, error) {
	if token == "" {
		return "", nil
	}
	return provider.GetCursor(ctx, token)
}
