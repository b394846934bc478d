package chat

import "DishaAssistant/internal/entity"

type HistoryMessage struct {
	Text  string `json:"text"`
	IsBot bool   `json:"isBot"`
}

type ChatRequest struct {
	Message             string           `json:"message" validate:"required"`
	ConversationHistory []HistoryMessage `json:"conversationHistory" validate:"max=200"`
	SessionID           string           `json:"session_id" validate:"omitempty,max=64"`
}

type ChatResponse struct {
	Response    string                      `json:"response"`
	RichContent *entity.RichContentEnvelope `json:"richContent,omitempty"`
	Link        string                      `json:"link,omitempty"`
	Suggestions []string                    `json:"suggestions,omitempty"`
	Fallback    bool                        `json:"fallback,omitempty"`
	SessionID   string                      `json:"session_id"`
	Intent      string                      `json:"intent"`
}

type TranscriptResponse struct {
	SessionID string                     `json:"session_id"`
	Messages  []entity.TranscriptMessage `json:"messages"`
}

type StreamRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id" validate:"omitempty,max=64"`
}

// StreamFrame is one websocket frame. Chunk frames carry Text only; the done
// frame inlines the full ChatResponse.
type StreamFrame struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
	*ChatResponse
}

const (
	FrameChunk = "chunk"
	FrameDone  = "done"
	FrameError = "error"
)
