package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xjtang/lifelog-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) IssueToken(c *gin.Context) {
	var body struct {
		DeviceKey string `json:"device_key"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	token, err := ah.authService.IssueToken(c.Request.Context(), body.DeviceKey)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	RespondOK(c, gin.H{"token": token})
}
