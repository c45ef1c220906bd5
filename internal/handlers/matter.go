package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xjtang/lifelog-backend/internal/services"
)

type MatterHandler struct {
	matterService services.MatterService
}

func NewMatterHandler(matterService services.MatterService) *MatterHandler {
	return &MatterHandler{matterService: matterService}
}

func (mh *MatterHandler) List(c *gin.Context) {
	matters, err := mh.matterService.List(c.Request.Context(), nil)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"matters": matters})
}

func (mh *MatterHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	matter, err := mh.matterService.Get(c.Request.Context(), nil, id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"matter": matter})
}

func (mh *MatterHandler) Create(c *gin.Context) {
	var input services.MatterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	matter, err := mh.matterService.Create(c.Request.Context(), nil, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"matter": matter})
}

func (mh *MatterHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.MatterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	matter, err := mh.matterService.Update(c.Request.Context(), nil, id, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"matter": matter})
}

func (mh *MatterHandler) SetEnabled(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Enabled == nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	matter, err := mh.matterService.SetEnabled(c.Request.Context(), nil, id, *body.Enabled)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"matter": matter})
}

func (mh *MatterHandler) Reorder(c *gin.Context) {
	var body struct {
		OrderedIDs []uuid.UUID `json:"ordered_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := mh.matterService.Reorder(c.Request.Context(), nil, body.OrderedIDs); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}

func (mh *MatterHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := mh.matterService.Delete(c.Request.Context(), nil, id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"status": "ok"})
}

// pathID parses the :id path segment, replying 400 itself on garbage.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return uuid.Nil, false
	}
	return id, true
}
