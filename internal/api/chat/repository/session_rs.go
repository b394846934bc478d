package chatRepository

import (
	"DishaAssistant/internal/api/chat"
	contextPkg "DishaAssistant/pkg/context"
	"DishaAssistant/pkg/storage"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type sessionRepository struct {
	store storage.IStorage
	log   *logrus.Logger
}

// ClearSession drops the context and the transcript in one storage call.
func (r *sessionRepository) ClearSession(ctx context.Context, sessionID string) error {
	if err := r.store.Delete(ctx, contextKey(sessionID), transcriptKey(sessionID)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to clear chat session")
		return chat.ErrClearSession
	}
	return nil
}
