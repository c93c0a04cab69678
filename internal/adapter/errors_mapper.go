package adapter

import (
	"strings"

	"github.com/go-resty/resty/v2"
)

// checkStatus returns nil when resp carries the expected status and a
// *RequestFailedError otherwise.
func checkStatus(path string, resp *resty.Response, expected int) error {
	if resp.StatusCode() == expected {
		return nil
	}

	return &RequestFailedError{
		Path:   path,
		Status: resp.StatusCode(),
		Body:   strings.TrimSpace(string(resp.Body())),
	}
}
