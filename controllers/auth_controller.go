package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/services"
	"github.com/abreai/abreai-api/utils"
)

// AuthController exposes registration, login and profile management
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register creates a new customer account
func (ac *AuthController) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	user, err := ac.auth.Register(input)
	if err != nil {
		var fieldErrs utils.FieldValidationErrors
		switch {
		case errors.As(err, &fieldErrs):
			utils.ValidationError(c, "Please correct the highlighted fields", fieldErrs)
		case errors.Is(err, services.ErrEmailTaken):
			utils.Conflict(c, "Email is already registered", nil)
		default:
			utils.InternalServerError(c, "Registration failed", nil)
		}
		return
	}
	utils.Created(c, utils.MsgRegisterSuccess, gin.H{"user": user})
}

// Login verifies credentials and issues a token
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	user, token, err := ac.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.Unauthorized(c, utils.MsgInvalidCredentials)
			return
		}
		utils.InternalServerError(c, "Login failed", nil)
		return
	}
	utils.Success(c, utils.MsgLoginSuccess, gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout clears the persisted current user
func (ac *AuthController) Logout(c *gin.Context) {
	ac.auth.Logout()
	utils.Success(c, utils.MsgLogoutSuccess, nil)
}

// Profile returns the authenticated user's profile
func (ac *AuthController) Profile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		utils.Unauthorized(c, utils.MsgUnauthorized)
		return
	}
	utils.Success(c, "Profile retrieved successfully", gin.H{"user": user})
}

// UpdateProfile edits the authenticated user's profile fields
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		utils.Unauthorized(c, utils.MsgUnauthorized)
		return
	}

	var update services.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updated, err := ac.auth.UpdateProfile(user.ID, update)
	if err != nil {
		var fieldErrs utils.FieldValidationErrors
		switch {
		case errors.As(err, &fieldErrs):
			utils.ValidationError(c, "Please correct the highlighted fields", fieldErrs)
		case errors.Is(err, services.ErrUserNotFound):
			utils.NotFound(c, utils.MsgRecordNotFound)
		default:
			utils.InternalServerError(c, "Profile update failed", nil)
		}
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"user": updated})
}

// currentUser pulls the user placed in context by the auth middleware
func currentUser(c *gin.Context) *models.User {
	val, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := val.(models.User)
	if !ok {
		return nil
	}
	return &user
}
