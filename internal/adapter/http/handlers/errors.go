package handlers

import (
	"errors"
	"net/http"

	"gashub/internal/usecase"
	"gashub/internal/usecase/interfaces"
	"gashub/pkg"
)

var (
	errInvalidOrderPayload  = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidFilterQuery   = pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid order filter", http.StatusBadRequest)
	errInvalidPaymentBody   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errStreamingUnavailable = pkg.NewDomainErrorSimple("STREAM_UNAVAILABLE", "Live updates are not available", http.StatusServiceUnavailable)
)

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerName), errors.Is(err, usecase.ErrInvalidAddress),
		errors.Is(err, usecase.ErrEmptyProducts), errors.Is(err, usecase.ErrInvalidProduct),
		errors.Is(err, usecase.ErrInvalidProductPrice), errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrMissingDueDate):
		return pkg.NewDomainError("INVALID_ORDER_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFilter):
		return errInvalidFilterQuery
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Order already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotOnCredit):
		return pkg.NewDomainErrorSimple("ORDER_NOT_ON_CREDIT", "Only fiado orders can be marked as paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidPaymentBody
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrFeedNotConfigured):
		return errStreamingUnavailable
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
