package chatRepository

import (
	"DishaAssistant/internal/entity"
	"DishaAssistant/pkg/storage"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

const (
	contextKeyPrefix    = "disha:context:"
	transcriptKeyPrefix = "disha:transcript:"

	// Older transcript messages are dropped past this length.
	maxTranscriptMessages = 200
)

func New(store storage.IStorage, log *logrus.Logger, ttl time.Duration) Repository {
	return &repository{
		store: store,
		log:   log,
		ttl:   ttl,
	}
}

type repository struct {
	store storage.IStorage
	log   *logrus.Logger
	ttl   time.Duration
}

type Repository interface {
	NewClient() Client
}

func (r *repository) NewClient() Client {
	return Client{
		Context:    &contextRepository{store: r.store, log: r.log, ttl: r.ttl},
		Transcript: &transcriptRepository{store: r.store, log: r.log, ttl: r.ttl},
		Session:    &sessionRepository{store: r.store, log: r.log},
	}
}

type Client struct {
	Context interface {
		GetContext(ctx context.Context, sessionID string) (*entity.ConversationContext, error)
		SaveContext(ctx context.Context, conv *entity.ConversationContext) error
	}

	Transcript interface {
		GetTranscript(ctx context.Context, sessionID string) ([]entity.TranscriptMessage, error)
		AppendTranscript(ctx context.Context, sessionID string, messages ...entity.TranscriptMessage) error
	}

	Session interface {
		ClearSession(ctx context.Context, sessionID string) error
	}
}

func contextKey(sessionID string) string {
	return contextKeyPrefix + sessionID
}

func transcriptKey(sessionID string) string {
	return transcriptKeyPrefix + sessionID
}
