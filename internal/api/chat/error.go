package chat

import "DishaAssistant/pkg/response"

var (
	ErrSessionNotFound = response.NewError(404, "chat session not found")
	ErrEmptyMessage    = response.NewError(400, "message is required")
	ErrClearSession    = response.NewError(500, "failed to clear chat session")
	ErrStoreContext    = response.NewError(500, "failed to store conversation context")
	ErrCompletion      = response.NewError(502, "language model unavailable")
)
