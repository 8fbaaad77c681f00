package handlers

import (
	"net/http"
	"strconv"

	"writings-api/helper"
	"writings-api/models"
	"writings-api/services"

	"github.com/gin-gonic/gin"
)

type WritingHandler struct {
	writingService services.WritingService
	Helper         *helper.HTTPHelper
}

func NewWritingHandler(writingService services.WritingService, h *helper.HTTPHelper) *WritingHandler {
	return &WritingHandler{writingService: writingService, Helper: h}
}

func (h *WritingHandler) GetWritings(c *gin.Context) {
	writings, err := h.writingService.ListWritings()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, models.ToWritingResponses(writings))
}

func (h *WritingHandler) GetWritingBySlug(c *gin.Context) {
	writing, err := h.writingService.GetWritingBySlug(c.Param("slug"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, models.ToWritingResponse(*writing))
}

func (h *WritingHandler) CreateWriting(c *gin.Context) {
	var req models.CreateWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, models.MsgInvalidBody, err)
		return
	}

	if err := h.Helper.ValidateStruct(req, models.MsgFieldsRequired); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	writing, err := h.writingService.CreateWriting(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, models.ToWritingResponse(*writing))
}

func (h *WritingHandler) UpdateWriting(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req models.UpdateWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, models.MsgInvalidBody, err)
		return
	}

	writing, err := h.writingService.UpdateWriting(id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, models.ToWritingResponse(*writing))
}

func (h *WritingHandler) DeleteWriting(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.writingService.DeleteWriting(id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, models.MessageResponse{Message: models.MsgWritingDeleted})
}

// parseID treats a non-numeric id like a missing writing.
func (h *WritingHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		h.Helper.SendNotFoundError(c)
		return 0, false
	}
	return uint(id), true
}
