package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ldbiro/ldbiro-web/internal/models"
	"github.com/ldbiro/ldbiro-web/internal/services"
)

type ContactHandler struct {
	service services.ContactServiceInterface
}

func NewContactHandler(service services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact accepts one contact form submission and runs it through
// the pipeline. Expected rejections carry their own status and fixed
// Serbian message; anything else maps to the generic retry response so the
// caller never observes an unhandled fault.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ValidationMessage(err), err)
		return
	}

	resp, err := h.service.SubmitContactForm(c.Request.Context(), &req)
	if err != nil {
		if subErr, ok := services.AsSubmissionError(err); ok {
			respondError(c, subErr.Status, subErr.Message, err)
			return
		}
		respondError(c, http.StatusInternalServerError, services.MsgSendFailed, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
