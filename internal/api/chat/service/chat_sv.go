package chatService

import (
	"DishaAssistant/internal/api/chat"
	chatRepository "DishaAssistant/internal/api/chat/repository"
	"DishaAssistant/internal/entity"
	contextPkg "DishaAssistant/pkg/context"
	"DishaAssistant/pkg/log"
	"DishaAssistant/pkg/nlp"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"strings"
	"time"
)

// historyLookback bounds how many earlier user messages feed PNR resolution.
const historyLookback = 10

func (s *chatService) ProcessMessage(ctx context.Context, req chat.ChatRequest) (chat.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return chat.ChatResponse{}, chat.ErrEmptyMessage
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = s.utils.NewSessionID()
	}
	ctx = contextPkg.WithSessionID(ctx, sessionID)

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	client := s.chatRepository.NewClient()
	conv := s.loadContext(ctx, client, sessionID)

	history := userHistory(req.ConversationHistory, conv)
	ents := s.extractor.Extract(message, history)
	intent := s.classifier.Classify(message, ents, dialogueState(conv))

	log.WithRequestID(s.log, ctx).WithFields(logrus.Fields{
		"intent": intent,
		"pnr":    ents.PNR,
		"train":  ents.TrainNumber,
	}).Debug("Message classified")

	r := s.generate(ctx, intent, ents, message, conv)

	fallback := false
	if s.completer != nil && !r.stateful {
		text, err := s.complete(ctx, client, message, req.ConversationHistory, ents, conv)
		if err != nil {
			log.ErrorWithTraceID(log.WithRequestID(s.log, ctx).WithFields(logrus.Fields{
				"provider": s.completer.Name(),
				"error":    err.Error(),
			}), "Completion failed, answering offline")
			r = s.offlineReply(ctx, message, history, conv)
			fallback = true
		} else {
			r.text = text
		}
	}

	now := s.now().UTC()
	s.remember(conv, message, intent, ents, r, now)

	if err := client.Context.SaveContext(ctx, conv); err != nil {
		log.WithRequestID(s.log, ctx).WithField("error", err.Error()).Warn("Conversation context not persisted")
	}

	resp := chat.ChatResponse{
		Response:    r.text,
		Link:        r.link,
		Suggestions: r.suggestions,
		Fallback:    fallback,
		SessionID:   sessionID,
		Intent:      intent,
	}
	if r.rich != nil {
		resp.RichContent = r.rich.Envelope()
	}

	s.appendTranscript(ctx, client, sessionID, message, resp, now)

	return resp, nil
}

// offlineReply rebuilds the answer from the raw message alone, so nothing
// computed for the completion request leaks into it.
func (s *chatService) offlineReply(ctx context.Context, message string, history []string, conv *entity.ConversationContext) reply {
	ents := s.extractor.Extract(message, history)
	intent := s.classifier.Classify(message, ents, dialogueState(conv))
	return s.generate(ctx, intent, ents, message, conv)
}

func (s *chatService) GetTranscript(ctx context.Context, sessionID string) ([]entity.TranscriptMessage, error) {
	return s.chatRepository.NewClient().Transcript.GetTranscript(ctx, sessionID)
}

func (s *chatService) GetContext(ctx context.Context, sessionID string) (*entity.ConversationContext, error) {
	return s.chatRepository.NewClient().Context.GetContext(ctx, sessionID)
}

func (s *chatService) ClearSession(ctx context.Context, sessionID string) error {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	if err := s.chatRepository.NewClient().Session.ClearSession(ctx, sessionID); err != nil {
		return err
	}

	log.WithRequestID(s.log, ctx).WithField("session_id", sessionID).Info("Chat session cleared")

	return nil
}

func (s *chatService) loadContext(ctx context.Context, client chatRepository.Client, sessionID string) *entity.ConversationContext {
	conv, err := client.Context.GetContext(ctx, sessionID)
	if err == nil {
		return conv
	}
	if !errors.Is(err, chat.ErrSessionNotFound) {
		log.WithRequestID(s.log, ctx).WithField("error", err.Error()).Warn("Starting fresh context after read failure")
	}
	return entity.NewConversationContext(sessionID)
}

func (s *chatService) remember(conv *entity.ConversationContext, message, intent string, ents nlp.Entities, r reply, at time.Time) {
	conv.LastIntent = intent
	if topic := nlp.TopicFor(intent); topic != "" {
		conv.LastTopic = entity.Topic(topic)
	}

	switch {
	case r.pnr != "":
		conv.LastPNR = r.pnr
	case ents.PNR != "":
		conv.LastPNR = ents.PNR
	}
	if ents.TrainNumber != "" {
		conv.LastTrainNumber = ents.TrainNumber
	}
	if r.rich != nil {
		conv.LastRichContent = r.rich.Envelope()
	}

	conv.Append(message, intent, at)
}

func (s *chatService) appendTranscript(ctx context.Context, client chatRepository.Client, sessionID, message string, resp chat.ChatResponse, at time.Time) {
	userID, _ := s.utils.NewULIDFromTimestamp(at)
	botID, _ := s.utils.NewULIDFromTimestamp(at)

	err := client.Transcript.AppendTranscript(ctx, sessionID,
		entity.TranscriptMessage{
			ID:        userID,
			Role:      entity.RoleUser,
			Content:   message,
			Timestamp: at,
		},
		entity.TranscriptMessage{
			ID:          botID,
			Role:        entity.RoleBot,
			Content:     resp.Response,
			Timestamp:   at,
			Link:        resp.Link,
			RichContent: resp.RichContent,
		},
	)
	if err != nil {
		log.WithRequestID(s.log, ctx).WithField("error", err.Error()).Warn("Transcript not persisted")
	}
}

// userHistory prefers the client supplied history and falls back to what the
// session remembers. The lookback counts bot turns, so only user texts among
// the last historyLookback entries are returned.
func userHistory(supplied []chat.HistoryMessage, conv *entity.ConversationContext) []string {
	if len(supplied) == 0 {
		return conv.RecentMessages(historyLookback)
	}

	if len(supplied) > historyLookback {
		supplied = supplied[len(supplied)-historyLookback:]
	}

	out := make([]string, 0, len(supplied))
	for _, m := range supplied {
		if !m.IsBot {
			out = append(out, m.Text)
		}
	}
	return out
}

func dialogueState(conv *entity.ConversationContext) nlp.DialogueState {
	state := nlp.DialogueState{
		LastIntent: conv.LastIntent,
		LastTopic:  string(conv.LastTopic),
	}
	if conv.PendingConfirmation != nil {
		state.Pending = string(conv.PendingConfirmation.Type)
	}
	return state
}
