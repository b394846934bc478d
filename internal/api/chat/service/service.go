package chatService

import (
	bookingService "DishaAssistant/internal/api/booking/service"
	"DishaAssistant/internal/api/chat"
	chatRepository "DishaAssistant/internal/api/chat/repository"
	"DishaAssistant/internal/entity"
	"DishaAssistant/pkg/llm"
	"DishaAssistant/pkg/lock"
	"DishaAssistant/pkg/nlp"
	"DishaAssistant/pkg/tone"
	"DishaAssistant/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"math/rand/v2"
	"time"
)

const defaultLLMTimeout = 20 * time.Second

type IChatService interface {
	ProcessMessage(ctx context.Context, req chat.ChatRequest) (chat.ChatResponse, error)
	GetTranscript(ctx context.Context, sessionID string) ([]entity.TranscriptMessage, error)
	GetContext(ctx context.Context, sessionID string) (*entity.ConversationContext, error)
	ClearSession(ctx context.Context, sessionID string) error
}

// Config tunes the pipeline. Zero values fall back to production defaults.
type Config struct {
	LLMTimeout time.Duration
	Now        func() time.Time
	Pick       func(n int) int
}

type chatService struct {
	log            *logrus.Logger
	chatRepository chatRepository.Repository
	bookingService bookingService.IBookingService
	extractor      nlp.IExtractor
	classifier     nlp.IClassifier
	completer      llm.ICompleter
	phrases        *tone.Phrases
	locks          *lock.Keyed
	utils          utils.IUtils
	llmTimeout     time.Duration
	now            func() time.Time
	pick           func(n int) int
}

// NewChatService wires the message pipeline. completer may be nil, in which
// case every reply comes from the local generator.
func NewChatService(
	log *logrus.Logger,
	cr chatRepository.Repository,
	bs bookingService.IBookingService,
	completer llm.ICompleter,
	cfg Config,
) IChatService {
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = defaultLLMTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Pick == nil {
		cfg.Pick = rand.IntN
	}

	return &chatService{
		log:            log,
		chatRepository: cr,
		bookingService: bs,
		extractor:      nlp.NewExtractor(),
		classifier:     nlp.NewDefaultClassifier(),
		completer:      completer,
		phrases:        tone.NewPhrasesWithPicker(cfg.Pick),
		locks:          lock.NewKeyed(),
		utils:          utils.New(),
		llmTimeout:     cfg.LLMTimeout,
		now:            cfg.Now,
		pick:           cfg.Pick,
	}
}
