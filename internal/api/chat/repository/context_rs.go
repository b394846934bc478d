package chatRepository

import (
	"DishaAssistant/internal/api/chat"
	"DishaAssistant/internal/entity"
	contextPkg "DishaAssistant/pkg/context"
	"DishaAssistant/pkg/storage"
	"errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type contextRepository struct {
	store storage.IStorage
	log   *logrus.Logger
	ttl   time.Duration
}

func (r *contextRepository) GetContext(ctx context.Context, sessionID string) (*entity.ConversationContext, error) {
	raw, err := r.store.Get(ctx, contextKey(sessionID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, chat.ErrSessionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to read conversation context")
		return nil, err
	}

	conv := entity.NewConversationContext(sessionID)
	if err := json.Unmarshal(raw, conv); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Discarding unreadable conversation context")
		return nil, chat.ErrSessionNotFound
	}

	return conv, nil
}

func (r *contextRepository) SaveContext(ctx context.Context, conv *entity.ConversationContext) error {
	raw, err := json.Marshal(conv)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, contextKey(conv.SessionID), raw, r.ttl); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": conv.SessionID,
			"error":      err.Error(),
		}).Error("Failed to save conversation context")
		return chat.ErrStoreContext
	}

	return nil
}
