package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/core/ports"
)

// ChatHandler handles HTTP requests for the shared chat room.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type postMessageRequest struct {
	Content string `json:"content"`
}

// List handles GET /api/chat — all messages, oldest first.
//
// @Summary      List chat messages
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Message
// @Failure      401  {object}  map[string]string
// @Router       /api/chat [get]
func (h *ChatHandler) List(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	messages, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

// Post handles POST /api/chat. Blank content is a 400.
//
// @Summary      Post a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postMessageRequest  true  "Message content"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/chat [post]
func (h *ChatHandler) Post(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Content) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	message, err := h.service.Post(c.Request().Context(), identity, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, message)
}
