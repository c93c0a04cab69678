package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-youfone/internal/config"
	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/models"
)

type httpYoufoneAdapter struct {
	session *Session

	logger *logger.Logger
}

// NewHTTPYoufoneAdapter constructs the REST implementation of
// [YoufoneAdapter] from the youfone section of the client config.
//
// Returns an error if the configured base URL template does not yield a
// valid URL.
func NewHTTPYoufoneAdapter(cfg config.ClientYoufone, logger *logger.Logger) (YoufoneAdapter, error) {
	session, err := NewSession(SessionConfig{
		Country:         cfg.Country,
		BaseURLTemplate: cfg.BaseURL,
		Headers:         cfg.Headers,
		Debug:           cfg.Debug,
		RequestTimeout:  cfg.RequestTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &httpYoufoneAdapter{session: session, logger: logger}, nil
}

// Use implements [YoufoneAdapter].
func (h *httpYoufoneAdapter) Use(ctx context.Context, fn func(ctx context.Context) error) error {
	return h.session.Use(ctx, fn)
}

// Login implements [YoufoneAdapter]. POST authentication/login.
func (h *httpYoufoneAdapter) Login(ctx context.Context, credentials models.Credentials) (map[string]any, error) {
	raw, err := h.session.Send(ctx, Request{
		Path:      PathLogin,
		Body:      credentials,
		WantsJSON: true,
	})
	if err != nil {
		return nil, err
	}

	var customer map[string]any
	if err = decode(PathLogin, raw, &customer); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, &DecodeError{Path: PathLogin, Err: fmt.Errorf("empty customer record")}
	}

	return customer, nil
}

// GetAvailableCards implements [YoufoneAdapter]. POST Card/GetAvailableCards.
func (h *httpYoufoneAdapter) GetAvailableCards(ctx context.Context, customerID any) ([]models.Card, error) {
	raw, err := h.session.Send(ctx, Request{
		Path:      PathAvailableCards,
		Body:      models.AvailableCardsRequest{CustomerID: customerID},
		WantsJSON: true,
	})
	if err != nil {
		return nil, err
	}

	var cards []models.Card
	if err = decode(PathAvailableCards, raw, &cards); err != nil {
		return nil, err
	}

	return cards, nil
}

// GetSimOnly implements [YoufoneAdapter]. POST Card/GetSimOnly.
func (h *httpYoufoneAdapter) GetSimOnly(ctx context.Context, option models.Option) (*models.UsageRecord, error) {
	raw, err := h.session.Send(ctx, Request{
		Path:      PathSimOnlyUsage,
		Body:      option,
		WantsJSON: true,
	})
	if err != nil {
		return nil, err
	}
	if isEmptyPayload(raw) {
		return nil, nil
	}

	var usage models.UsageRecord
	if err = decode(PathSimOnlyUsage, raw, &usage); err != nil {
		return nil, err
	}

	return &usage, nil
}

// GetAbonnement implements [YoufoneAdapter]. POST Products/SimOnly/GetAbonnement.
func (h *httpYoufoneAdapter) GetAbonnement(ctx context.Context, option models.Option) (*models.Abonnement, error) {
	raw, err := h.session.Send(ctx, Request{
		Path:      PathAbonnement,
		Body:      option,
		WantsJSON: true,
	})
	if err != nil {
		return nil, err
	}
	if isEmptyPayload(raw) {
		return nil, nil
	}

	var abonnement models.Abonnement
	if err = decode(PathAbonnement, raw, &abonnement); err != nil {
		return nil, err
	}

	return &abonnement, nil
}

// decode keeps numbers as json.Number so that payloads echoed back to the
// API (options, the customer id) keep their exact digits.
func decode(path string, raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

// isEmptyPayload reports a body that carries no data: absent, null, or an
// empty object, array or string.
func isEmptyPayload(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return false
	}

	switch compact.String() {
	case "null", "{}", "[]", `""`:
		return true
	default:
		return false
	}
}
