package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/xjtang/lifelog-backend/internal/services"
)

type WidgetHandler struct {
	widgetService services.WidgetService
}

func NewWidgetHandler(widgetService services.WidgetService) *WidgetHandler {
	return &WidgetHandler{widgetService: widgetService}
}

func (wh *WidgetHandler) Today(c *gin.Context) {
	summary, err := wh.widgetService.TodaySummary(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}
