// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-youfone/internal/adapter"
	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/internal/utils"
	"github.com/MKhiriev/go-youfone/models"
)

type accountService struct {
	adapter     adapter.YoufoneAdapter
	credentials models.Credentials

	logger *logger.Logger
}

// NewAccountService binds the adapter to one set of credentials.
func NewAccountService(youfoneAdapter adapter.YoufoneAdapter, credentials models.Credentials, logger *logger.Logger) AccountService {
	return &accountService{
		adapter:     youfoneAdapter,
		credentials: credentials,
		logger:      logger,
	}
}

func (s *accountService) GetData(ctx context.Context) (*models.AccountSnapshot, error) {
	var snapshot *models.AccountSnapshot

	err := s.adapter.Use(ctx, func(ctx context.Context) error {
		var err error
		snapshot, err = s.collect(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (s *accountService) GetDataResult(ctx context.Context) models.DataResult {
	log := logger.FromContextOr(ctx, s.logger)

	snapshot, err := s.GetData(ctx)
	if err != nil {
		log.Warn().
			Err(err).
			Bool("retryable", adapter.IsRetryable(err)).
			Msg("collecting account data failed")
		return models.NewErrorResult(err)
	}

	log.Debug().
		Int("lines", len(snapshot.SimInfo)).
		Msg("account data collected")
	return models.NewDataResult(snapshot)
}

func (s *accountService) collect(ctx context.Context) (*models.AccountSnapshot, error) {
	log := logger.FromContextOr(ctx, s.logger)

	raw, err := s.adapter.Login(ctx, s.credentials)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogin, err)
	}

	customer := models.Customer(utils.NormalizeKeys(raw))
	customerID, ok := customer.ID()
	if !ok {
		return nil, ErrMissingCustomerID
	}

	cards, err := s.adapter.GetAvailableCards(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListCards, err)
	}

	simInfo := make([]models.SimInfo, 0)
	for _, card := range cards {
		if !card.IsSimOnly() {
			continue
		}

		for _, option := range card.Options {
			info, found, err := s.collectLine(ctx, option)
			if err != nil {
				return nil, err
			}
			if !found {
				log.Debug().Str("msisdn", option.MSISDN()).Msg("no sim-only data for line, skipping")
				continue
			}
			simInfo = append(simInfo, info)
		}
	}

	return &models.AccountSnapshot{
		Customer: customer,
		SimInfo:  simInfo,
	}, nil
}

// collectLine fetches usage and plan details of one line. found is false when
// either endpoint has nothing for it; the plan is not requested without usage.
func (s *accountService) collectLine(ctx context.Context, option models.Option) (models.SimInfo, bool, error) {
	usage, err := s.adapter.GetSimOnly(ctx, option)
	if err != nil {
		return models.SimInfo{}, false, fmt.Errorf("%w: %w", ErrFetchUsage, err)
	}
	if usage == nil {
		return models.SimInfo{}, false, nil
	}

	abonnement, err := s.adapter.GetAbonnement(ctx, option)
	if err != nil {
		return models.SimInfo{}, false, fmt.Errorf("%w: %w", ErrFetchAbonnement, err)
	}
	if abonnement == nil {
		return models.SimInfo{}, false, nil
	}

	generalInfo := utils.NormalizeKeys(abonnement.GeneralInfo)
	if generalInfo == nil {
		generalInfo = map[string]any{}
	}

	return models.SimInfo{
		Options:        option,
		Usage:          usage.Snapshots(),
		AbonnementInfo: generalInfo,
	}, true, nil
}
