package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/services"
	"github.com/abreai/abreai-api/utils"
)

// ChatController exposes the support chat responder
type ChatController struct {
	chat *services.ChatService
	auth *services.AuthService
}

func NewChatController(chat *services.ChatService, auth *services.AuthService) *ChatController {
	return &ChatController{chat: chat, auth: auth}
}

// userEmail resolves the email used to scope order lookups: the JWT user
// when present, otherwise the persisted current user.
func (cc *ChatController) userEmail(c *gin.Context) string {
	if val, exists := c.Get("user"); exists {
		if user, ok := val.(models.User); ok {
			return user.Email
		}
	}
	if user, ok := cc.auth.CurrentUser(); ok {
		return user.Email
	}
	return ""
}

// Greeting returns the opening bot message
func (cc *ChatController) Greeting(c *gin.Context) {
	utils.Success(c, "Greeting retrieved", gin.H{"reply": cc.chat.Greeting()})
}

// Message answers a single chat message
func (cc *ChatController) Message(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	reply := cc.chat.Respond(req.Text, cc.userEmail(c))
	utils.Success(c, "Reply generated", gin.H{"reply": reply})
}
