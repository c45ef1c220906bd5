package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/xjtang/lifelog-backend/internal/recordset"
	"github.com/xjtang/lifelog-backend/internal/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (sh *StatsHandler) Overview(c *gin.Context) {
	window := recordset.Window(c.DefaultQuery("window", string(recordset.WindowWeek)))
	overview, err := sh.statsService.Overview(c.Request.Context(), window)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"overview": overview})
}

func (sh *StatsHandler) Series(c *gin.Context) {
	matterID, ok := pathID(c)
	if !ok {
		return
	}
	granularity := c.DefaultQuery("granularity", "day")
	var (
		points []recordset.Point
		err    error
	)
	if granularity == "day" {
		points, err = sh.statsService.DailySeries(c.Request.Context(), matterID)
	} else {
		points, err = sh.statsService.Series(c.Request.Context(), matterID, recordset.Granularity(granularity))
	}
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"points": points})
}

func (sh *StatsHandler) OptionStats(c *gin.Context) {
	matterID, ok := pathID(c)
	if !ok {
		return
	}
	stats, err := sh.statsService.OptionStats(c.Request.Context(), matterID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"stats": stats})
}
