package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrMissingCustomerID = errors.New("login response has no customer id")

	ErrLogin           = errors.New("login failed")
	ErrListCards       = errors.New("listing available cards failed")
	ErrFetchUsage      = errors.New("fetching sim-only usage failed")
	ErrFetchAbonnement = errors.New("fetching abonnement failed")
)
