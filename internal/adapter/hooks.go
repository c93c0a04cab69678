package adapter

import (
	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/internal/utils"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// registerDebugHooks logs method, URL, status, headers and bodies of every
// exchange made by client.
func registerDebugHooks(client *utils.HTTPClient, log *logger.Logger) {
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		req := resp.Request
		event := log.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Interface("response_headers", resp.Header()).
			Str("response_body", resp.String())

		if req.RawRequest != nil {
			event = event.Interface("request_headers", req.RawRequest.Header)
		}
		logBody(event, req.Body).Msg("youfone exchange")

		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		log.Debug().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("youfone request failed")
	})
}

func logBody(event *zerolog.Event, body any) *zerolog.Event {
	switch b := body.(type) {
	case nil:
		return event
	case zerolog.LogObjectMarshaler:
		return event.Object("request_body", b)
	default:
		return event.Interface("request_body", b)
	}
}
