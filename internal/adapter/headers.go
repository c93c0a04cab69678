package adapter

import (
	"maps"
	"strings"
)

// headerTemplate is shared by every session and is only ever read.
var headerTemplate = map[string]string{
	"Accept":       "application/json, text/plain, */*",
	"Content-Type": "application/json",
	"Origin":       "https://my.youfone." + CountryToken,
	"Referer":      "https://my.youfone." + CountryToken + "/",
	"User-Agent":   "go-youfone",
}

// headersFor returns a fresh header set with the country token substituted.
func headersFor(country string) map[string]string {
	headers := maps.Clone(headerTemplate)
	for k, v := range headers {
		headers[k] = strings.ReplaceAll(v, CountryToken, country)
	}
	return headers
}
