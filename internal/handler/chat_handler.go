// Package handler holds the HTTP layer over the services.
package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sdvn-lab/traffic-backend-go/internal/models"
	"github.com/sdvn-lab/traffic-backend-go/internal/service"
	"github.com/sdvn-lab/traffic-backend-go/pkg/response"
)

// ChatHandler handles HTTP requests for the assistant panel.
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /api/v1/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: question is required")
		return
	}
	h.answer(c, req.Question)
}

// ChatGet handles GET /api/v1/chat?question=..., the curl-friendly variant.
func (h *ChatHandler) ChatGet(c *gin.Context) {
	question := c.Query("question")
	if strings.TrimSpace(question) == "" {
		response.BadRequest(c, "Missing question parameter")
		return
	}
	h.answer(c, question)
}

func (h *ChatHandler) answer(c *gin.Context, question string) {
	answer := h.chatService.Chat(c.Request.Context(), question)
	c.JSON(http.StatusOK, gin.H{
		"answer": answer.Text,
		"intent": answer.Intent,
		"source": answer.Source,
		"rows":   answer.Rows,
		"status": "success",
	})
}

// History handles GET /api/v1/chat/history.
func (h *ChatHandler) History(c *gin.Context) {
	var filter models.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	messages, err := h.chatService.History(filter)
	if err != nil {
		response.InternalError(c, "Failed to load chat history")
		return
	}
	response.Success(c, messages)
}

// ClearHistory handles DELETE /api/v1/chat/history.
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	if err := h.chatService.ClearHistory(); err != nil {
		response.InternalError(c, "Failed to clear chat history")
		return
	}
	response.Success(c, nil)
}
