package chatHandler

import (
	chatService "DishaAssistant/internal/api/chat/service"
	"DishaAssistant/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	chat := srv.Group("/chat")
	chat.Post("", h.SendMessage)

	chat.Use("/ws", wsMiddleware)
	chat.Get("/ws", websocket.New(h.handleStream))

	chat.Get("/:session_id/transcript", h.GetTranscript)
	chat.Get("/:session_id/context", h.GetContext)
	chat.Delete("/:session_id", h.ClearSession)
}
