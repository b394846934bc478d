package chatRepository

import (
	"DishaAssistant/internal/entity"
	contextPkg "DishaAssistant/pkg/context"
	"DishaAssistant/pkg/storage"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

type transcriptRepository struct {
	store storage.IStorage
	log   *logrus.Logger
	ttl   time.Duration
}

// GetTranscript returns an empty transcript for unknown sessions.
func (r *transcriptRepository) GetTranscript(ctx context.Context, sessionID string) ([]entity.TranscriptMessage, error) {
	raw, err := r.store.Get(ctx, transcriptKey(sessionID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []entity.TranscriptMessage{}, nil
		}
		return nil, err
	}

	var messages []entity.TranscriptMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Discarding unreadable transcript")
		return []entity.TranscriptMessage{}, nil
	}

	return messages, nil
}

func (r *transcriptRepository) AppendTranscript(ctx context.Context, sessionID string, messages ...entity.TranscriptMessage) error {
	existing, err := r.GetTranscript(ctx, sessionID)
	if err != nil {
		return err
	}

	existing = append(existing, messages...)
	if overflow := len(existing) - maxTranscriptMessages; overflow > 0 {
		existing = existing[overflow:]
	}

	raw, err := json.Marshal(existing)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, transcriptKey(sessionID), raw, r.ttl); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to save transcript")
		return err
	}

	return nil
}
