package client

import "errors"

var (
	ErrNoServices  = errors.New("client: services are not configured")
	ErrNoConfig    = errors.New("client: config is not provided")
	ErrFetchFailed = errors.New("fetching account data failed")
)
