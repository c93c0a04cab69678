// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the transport layer towards the Youfone
// customer API.
//
// [Session] owns the HTTP connection context, the per-country endpoint and
// headers, and the rotating security key. [YoufoneAdapter] exposes the
// individual API calls on top of it. Failures are reported as one of
// *RequestFailedError, *TransportError or *DecodeError so callers can tell
// permanent rejections from retryable transport problems ([IsRetryable]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-youfone/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/youfone_adapter_mock.go -package=mock

// YoufoneAdapter defines the Youfone API calls used by the service layer.
type YoufoneAdapter interface {
	// Use opens the underlying session, runs fn and always closes the
	// session afterwards. The error of fn is returned unchanged.
	Use(ctx context.Context, fn func(ctx context.Context) error) error

	// Login posts the credentials to the login endpoint and returns the raw
	// customer record (API key casing). Any status but 200 is an error.
	Login(ctx context.Context, credentials models.Credentials) (map[string]any, error)

	// GetAvailableCards lists the service cards of the customer.
	GetAvailableCards(ctx context.Context, customerID any) ([]models.Card, error)

	// GetSimOnly returns the usage record of one line, or nil when the API
	// has no usage data for it.
	GetSimOnly(ctx context.Context, option models.Option) (*models.UsageRecord, error)

	// GetAbonnement returns the plan record of one line, or nil when the API
	// has no plan data for it.
	GetAbonnement(ctx context.Context, option models.Option) (*models.Abonnement, error)
}
