package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logger "gitlab.com/unnchai/agro.backend/src/production/AGT.Logger"
	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
	api_models "gitlab.com/unnchai/agro.backend/src/production/AGT.Models/api"
	interfaces "gitlab.com/unnchai/agro.backend/src/production/AGT.Repository/Interfaces"
)

// ChatController handles chat requests
type ChatController struct {
	chatRepo  interfaces.ChatRepository
	completer interfaces.ChatCompleter
	logger    *logger.Logger
}

// NewChatController creates a new chat controller
func NewChatController(chatRepo interfaces.ChatRepository, completer interfaces.ChatCompleter, logger *logger.Logger) *ChatController {
	return &ChatController{
		chatRepo:  chatRepo,
		completer: completer,
		logger:    logger,
	}
}

// RegisterRoutes registers the chat routes with Gin
func (c *ChatController) RegisterRoutes(router *gin.Engine) {
	router.POST("/chat", c.Chat)
}

// Chat forwards one user message to the chat-completion model and returns the
// raw markdown reply as text/plain. Each call is a single independent turn;
// the exchange is appended to the conversation document for audit only.
func (c *ChatController) Chat(ctx *gin.Context) {
	var req api_models.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.ErrorWithError(err, "Invalid chat payload")
		ctx.JSON(http.StatusInternalServerError, api_models.StatusFailed)
		return
	}

	c.logger.WithFields(map[string]interface{}{
		"conversation_id": req.ID,
		"message":         req.Message,
	}).Info("Chat message received")

	userMsg := agtmodels.ChatMessage{Role: "user", Content: req.Message}
	if err := c.chatRepo.AppendMessage(ctx, req.ID, userMsg); err != nil {
		c.logger.WithField("conversation_id", req.ID).ErrorWithError(err, "Failed to record user message")
		ctx.JSON(http.StatusInternalServerError, api_models.StatusFailed)
		return
	}

	reply, err := c.completer.Complete(ctx, req.Message)
	if err != nil {
		c.logger.WithField("conversation_id", req.ID).ErrorWithError(err, "Chat completion failed")
		ctx.JSON(http.StatusInternalServerError, api_models.StatusFailed)
		return
	}

	assistantMsg := agtmodels.ChatMessage{Role: "assistant", Content: reply}
	if err := c.chatRepo.AppendMessage(ctx, req.ID, assistantMsg); err != nil {
		c.logger.WithField("conversation_id", req.ID).ErrorWithError(err, "Failed to record assistant reply")
		ctx.JSON(http.StatusInternalServerError, api_models.StatusFailed)
		return
	}

	c.logger.WithFields(map[string]interface{}{
		"conversation_id": req.ID,
		"response":        reply,
	}).Info("Chat reply sent")

	ctx.String(http.StatusOK, reply)
}
