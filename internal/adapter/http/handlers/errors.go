package handlers

import (
	"errors"
	"net/http"

	"ticket_checkout/internal/usecase"
	"ticket_checkout/pkg"
)

func mapCheckoutError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make(map[string]string, len(verr.Fields))
		for field, ferr := range verr.Fields {
			details[field] = ferr.Error()
		}
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout input", http.StatusBadRequest).WithDetails(details)
	case errors.Is(err, usecase.ErrInvalidRegistrationID), errors.Is(err, usecase.ErrInvalidEventID),
		errors.Is(err, usecase.ErrInvalidConfirmationPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutSessionNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_SESSION_NOT_FOUND", "No confirmation is running for this registration", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutShuttingDown):
		return pkg.NewDomainErrorSimple("SERVICE_SHUTTING_DOWN", "The service is shutting down, try again shortly", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
