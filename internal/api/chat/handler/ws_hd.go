package chatHandler

import (
	"DishaAssistant/internal/api/chat"
	"DishaAssistant/internal/middleware"
	contextPkg "DishaAssistant/pkg/context"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
	"regexp"
	"time"
)

const (
	wordsPerChunk = 3
	readTimeout   = 60 * time.Second
	writeTimeout  = 10 * time.Second
)

var wordPattern = regexp.MustCompile(`\S+\s*`)

// handleStream answers each text frame with the reply split into word chunks
// followed by a done frame carrying the full response.
func (h *ChatHandler) handleStream(c *websocket.Conn) {
	requestID, _ := c.Locals(middleware.RequestIDKey).(string)
	if requestID == "" {
		requestID = "unknown"
	}

	h.log.WithField("request_id", requestID).Info("Chat stream client connected")
	defer h.log.WithField("request_id", requestID).Info("Chat stream client disconnected")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	for {
		if err := c.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Chat stream error: %v", err)
			}
			break
		}

		if messageType != websocket.TextMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		var req chat.StreamRequest
		if err := json.Unmarshal(message, &req); err != nil {
			if !h.writeFrame(c, chat.StreamFrame{Type: chat.FrameError, Error: "invalid message payload"}) {
				break
			}
			continue
		}
		if err := h.validator.Struct(req); err != nil {
			if !h.writeFrame(c, chat.StreamFrame{Type: chat.FrameError, Error: "Validation failed: " + err.Error()}) {
				break
			}
			continue
		}

		ctx, cancel := context.WithTimeout(contextPkg.WithRequestID(context.Background(), requestID), messageTimeout)
		resp, err := h.chatService.ProcessMessage(ctx, chat.ChatRequest{Message: req.Message, SessionID: req.SessionID})
		cancel()
		if err != nil {
			h.log.WithField("request_id", requestID).Errorf("Error processing streamed message: %v", err)
			if !h.writeFrame(c, chat.StreamFrame{Type: chat.FrameError, Error: err.Error()}) {
				break
			}
			continue
		}

		if !h.streamReply(c, resp) {
			break
		}
	}
}

func (h *ChatHandler) streamReply(c *websocket.Conn, resp chat.ChatResponse) bool {
	for _, chunk := range chunkWords(resp.Response, wordsPerChunk) {
		if !h.writeFrame(c, chat.StreamFrame{Type: chat.FrameChunk, Text: chunk}) {
			return false
		}
	}
	return h.writeFrame(c, chat.StreamFrame{Type: chat.FrameDone, ChatResponse: &resp})
}

func (h *ChatHandler) writeFrame(c *websocket.Conn, frame chat.StreamFrame) bool {
	if err := c.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		h.log.Errorf("Error setting write deadline: %v", err)
		return false
	}

	payload, err := json.Marshal(frame)
	if err != nil {
		h.log.Errorf("Error encoding frame: %v", err)
		return false
	}

	if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
		h.log.Errorf("Error writing frame: %v", err)
		return false
	}

	if err := c.SetWriteDeadline(time.Time{}); err != nil {
		h.log.Errorf("Error resetting write deadline: %v", err)
		return false
	}
	return true
}

// chunkWords splits text into groups of n words. Whitespace after each word
// stays with it, so the chunks concatenate back to the trimmed text.
func chunkWords(text string, n int) []string {
	if n <= 0 {
		n = 1
	}
	words := wordPattern.FindAllString(text, -1)

	chunks := make([]string, 0, (len(words)+n-1)/n)
	for i := 0; i < len(words); i += n {
		end := i + n
		if end > len(words) {
			end = len(words)
		}
		chunk := ""
		for _, w := range words[i:end] {
			chunk += w
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
