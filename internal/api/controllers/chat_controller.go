package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/models/response_models"
	"konkanbliss/internal/services"
	"konkanbliss/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

func (ch *ChatController) SendMessage(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	quick := c.Query("mode") == "quick"
	reply := ch.chatService.Reply(req.Message, quick)

	utils.RespondSuccess(c, response_models.ChatReply{Reply: reply}, "Reply generated")
}
