package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xjtang/lifelog-backend/internal/services"
)

type TestDataHandler struct {
	testDataService services.TestDataService
}

func NewTestDataHandler(testDataService services.TestDataService) *TestDataHandler {
	return &TestDataHandler{testDataService: testDataService}
}

func (th *TestDataHandler) Generate(c *gin.Context) {
	matterID, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Days int `json:"days"`
	}
	// Body is optional; an empty one means the default span.
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	count, err := th.testDataService.Generate(c.Request.Context(), matterID, body.Days)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"generated": count})
}
