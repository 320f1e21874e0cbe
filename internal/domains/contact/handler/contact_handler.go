package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/service"
)

// =====================================================
// CONTACT HANDLER
// =====================================================

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles a contact form submission.
// POST /api/v1/contact
//
// The body is always a model.Result - the form client consumes
// {success, message, errors} directly to update its UI state, so this
// endpoint does not use the shared response envelope.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.SubmitRequest

	// Malformed JSON is converted to the generic failure result, the
	// same as any other failure inside the pipeline.
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Info().Err(err).Msg("Contact submission with unparseable body")
		c.JSON(http.StatusBadRequest, model.Result{
			Success: false,
			Message: model.MsgSubmitFailure,
		})
		return
	}

	result := h.contactService.Submit(c.Request.Context(), &req)

	status := http.StatusOK
	if !result.Success {
		if len(result.Errors) > 0 {
			status = http.StatusBadRequest
		} else {
			status = http.StatusBadGateway
		}
	}

	c.JSON(status, result)
}
