package service

import (
	"context"

	"portfolio-backend/internal/domains/contact/model"
	"portfolio-backend/internal/domains/contact/relay"
)

// Relay delivers a validated submission to the external email relay.
type Relay interface {
	Send(ctx context.Context, p relay.Payload) error
}

// ContactService là business logic layer của contact domain.
type ContactService interface {
	// Submit validates and relays a contact submission. It always
	// returns a Result; failures never propagate past this boundary.
	Submit(ctx context.Context, req *model.SubmitRequest) model.Result
}
