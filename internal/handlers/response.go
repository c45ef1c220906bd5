package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xjtang/lifelog-backend/internal/services"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps service failures onto the API taxonomy:
// validation failures carry their named reason at 422, missing rows are 404,
// anything else is an opaque 500 surfaced to the caller instead of being
// swallowed.
func RespondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		RespondError(c, http.StatusUnprocessableEntity, verr.Reason, verr)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	RespondError(c, http.StatusInternalServerError, "persistence_failure", err)
}
