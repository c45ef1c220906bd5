package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xjtang/lifelog-backend/internal/services"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (sh *SettingsHandler) GetReminder(c *gin.Context) {
	settings, err := sh.settingsService.GetReminder(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"reminder": settings})
}

func (sh *SettingsHandler) SetReminder(c *gin.Context) {
	var body services.ReminderSettings
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	settings, err := sh.settingsService.SetReminder(c.Request.Context(), nil, body)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"reminder": settings})
}
