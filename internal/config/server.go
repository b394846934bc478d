package config

import (
	"DishaAssistant/database/postgres"
	bookingHandler "DishaAssistant/internal/api/booking/handler"
	bookingRepository "DishaAssistant/internal/api/booking/repository"
	bookingService "DishaAssistant/internal/api/booking/service"
	chatHandler "DishaAssistant/internal/api/chat/handler"
	chatRepository "DishaAssistant/internal/api/chat/repository"
	chatService "DishaAssistant/internal/api/chat/service"
	"DishaAssistant/internal/middleware"
	"DishaAssistant/pkg/gemini"
	"DishaAssistant/pkg/llm"
	"DishaAssistant/pkg/openai"
	"DishaAssistant/pkg/redis"
	"DishaAssistant/pkg/storage"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const defaultSessionTTL = 24 * time.Hour

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	store      storage.IStorage
	completer  llm.ICompleter
	handlers   []handler
	closers    []io.Closer
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.store == nil {
		server.store = storage.NewMemory()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithStorage picks the backing store from STORAGE_DRIVER: memory (default),
// redis or postgres.
func WithStorage() ServerOption {
	return func(s *Server) error {
		driver := os.Getenv("STORAGE_DRIVER")

		switch driver {
		case "", "memory":
			s.store = storage.NewMemory()
		case "redis":
			client := redis.New()
			s.store = client
			s.closers = append(s.closers, client)
		case "postgres":
			db, err := postgres.New()
			if err != nil {
				if s.log != nil {
					s.log.Errorf("Failed to connect to database: %v", err)
				}
				return fmt.Errorf("failed to create database connection: %w", err)
			}
			pg := storage.NewPostgres(db, s.log)
			if err := pg.Migrate(context.Background()); err != nil {
				db.Close()
				return fmt.Errorf("failed to migrate storage table: %w", err)
			}
			s.db = db
			s.store = pg
			s.closers = append(s.closers, db)
		default:
			return fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
		}

		if s.log != nil {
			s.log.WithField("driver", driver).Info("Storage initialized")
		}
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithCompleter wires the language model named by CHAT_LLM_PROVIDER. An empty
// value or "none" keeps the assistant fully offline.
func WithCompleter() ServerOption {
	return func(s *Server) error {
		switch provider := os.Getenv("CHAT_LLM_PROVIDER"); provider {
		case "", "none":
			return nil
		case "openai":
			if os.Getenv("OPENAI_API_KEY") == "" {
				return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
			}
			s.completer = openai.NewChatGPT()
		case "gemini":
			client, err := gemini.NewGeminiClient(context.Background())
			if err != nil {
				if s.log != nil {
					s.log.Errorf("Failed to create Gemini client: %v", err)
				}
				return fmt.Errorf("failed to create Gemini client: %w", err)
			}
			s.completer = client
			if c, ok := client.(io.Closer); ok {
				s.closers = append(s.closers, c)
			}
		default:
			return fmt.Errorf("unknown CHAT_LLM_PROVIDER %q", provider)
		}
		return nil
	}
}

func (s *Server) RegisterHandler() {
	sessionTTL := envDuration("CHAT_SESSION_TTL", defaultSessionTTL)

	// Booking Domain
	bookingRepo := bookingRepository.New(s.store, s.log)
	bookingServices := bookingService.NewBookingService(s.log, bookingRepo)
	bookingHandlers := bookingHandler.New(s.log, s.validator, s.middleware, bookingServices)

	// Chat Domain
	chatRepo := chatRepository.New(s.store, s.log, sessionTTL)
	chatServices := chatService.NewChatService(s.log, chatRepo, bookingServices, s.completer, chatService.Config{
		LLMTimeout: envDuration("CHAT_LLM_TIMEOUT", 0),
	})
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	provider := "offline"
	if s.completer != nil {
		provider = s.completer.Name()
	}
	s.log.WithFields(logrus.Fields{
		"completer":   provider,
		"session_ttl": sessionTTL.String(),
	}).Info("Chat pipeline ready")

	s.setupHealthCheck()
	s.handlers = append(s.handlers, bookingHandlers, chatHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting requests and releases storage and provider clients.
func (s *Server) Shutdown() error {
	err := s.engine.Shutdown()
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil {
			s.log.Errorf("Error closing resource: %v", cerr)
		}
	}
	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
