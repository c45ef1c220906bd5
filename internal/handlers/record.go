package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xjtang/lifelog-backend/internal/recordset"
	"github.com/xjtang/lifelog-backend/internal/services"
)

type RecordHandler struct {
	recordService services.RecordService
}

func NewRecordHandler(recordService services.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// UpsertSelection is the single mutation point of the journal: set or clear
// the selection for one matter on one day.
func (rh *RecordHandler) UpsertSelection(c *gin.Context) {
	matterID, ok := pathID(c)
	if !ok {
		return
	}
	var sel services.RecordSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	record, err := rh.recordService.UpsertSelection(c.Request.Context(), matterID, sel)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"record": record})
}

func (rh *RecordHandler) History(c *gin.Context) {
	matterID, ok := pathID(c)
	if !ok {
		return
	}
	window := recordset.Window(c.DefaultQuery("window", string(recordset.WindowAll)))
	if !window.Valid() {
		RespondError(c, http.StatusBadRequest, "bad_request", nil)
		return
	}
	records, err := rh.recordService.History(c.Request.Context(), nil, matterID, window)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"records": records})
}

func (rh *RecordHandler) Today(c *gin.Context) {
	records, err := rh.recordService.TodayRecords(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"records": records})
}

func (rh *RecordHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rh.recordService.Delete(c.Request.Context(), nil, id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}
