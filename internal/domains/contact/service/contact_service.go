package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/relay"
	"portfolio-backend/internal/metrics"
)

// =====================================================
// CONTACT SERVICE
// =====================================================

type contactService struct {
	relay Relay
}

// NewContactService wires the submission pipeline to a relay. The relay
// endpoint was already selected by config; this service has no ambient
// inputs.
func NewContactService(relayClient Relay) ContactService {
	return &contactService{
		relay: relayClient,
	}
}

// Submit runs the submission pipeline:
//
//	validate -> relay POST -> result
//
// Validation failure short-circuits before any network call. Every
// failure mode collapses into a Result; relay internals are logged,
// never surfaced to the user.
func (s *contactService) Submit(ctx context.Context, req *model.SubmitRequest) model.Result {
	// Step 1: Authoritative re-validation. The browser already checked
	// these rules interactively, but the payload may not have come from
	// the browser.
	if err := req.Validate(); err != nil {
		fieldErrors := model.FieldErrorsFrom(err)

		message := model.MsgSubmitFailure
		if len(fieldErrors) > 0 {
			message = fieldErrors[0].Message
		}

		log.Info().
			Str("field", firstField(fieldErrors)).
			Msg("Contact submission rejected by validation")
		metrics.ContactSubmissionsTotal.WithLabelValues(metrics.ResultInvalid).Inc()

		return model.Result{
			Success: false,
			Message: message,
			Errors:  fieldErrors,
		}
	}

	// Step 2: Single relay call. No retry: a second identical
	// submission produces a second outbound call.
	payload := relay.Payload{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := s.relay.Send(ctx, payload); err != nil {
		// Relay internals stay in the log; the user gets the generic
		// failure message.
		log.Error().Err(err).Msg("Contact relay call failed")
		metrics.ContactSubmissionsTotal.WithLabelValues(metrics.ResultRelayFailed).Inc()

		return model.Result{
			Success: false,
			Message: model.MsgSubmitFailure,
		}
	}

	metrics.ContactSubmissionsTotal.WithLabelValues(metrics.ResultAccepted).Inc()

	return model.Result{
		Success: true,
		Message: model.MsgSubmitSuccess,
	}
}

func firstField(errs []model.FieldError) string {
	if len(errs) == 0 {
		return ""
	}
	return errs[0].Field
}
