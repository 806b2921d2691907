package handler

import (
	"context"
	"net/http"

	auth "stakex/internal/authService"
	"stakex/internal/models"
	"stakex/services/marketplace/helpers"
	"stakex/utils"

	"github.com/gin-gonic/gin"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, in auth.RegisterInput) (models.User, string, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
	Me(ctx context.Context, userID string) (models.User, error)
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterHandler handles POST /api/auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	u, token, err := h.service.Register(c.Request.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Address:  req.Address,
	})
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AuthResponse{User: u, Token: token}, "account created successfully")
	helpers.LogSuccess("RegisterHandler", "account created successfully", map[string]any{
		"user_id": u.UserID,
	})
}

// LoginHandler handles POST /api/auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	u, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AuthResponse{User: u, Token: token}, "logged in successfully")
}

// MeHandler handles GET /api/auth/me
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID, ok := helpers.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, helpers.ErrMissingIdentity, "authentication required")
		return
	}

	u, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "MeHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, u, "account retrieved successfully")
}
