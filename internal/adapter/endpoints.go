package adapter

import "slices"

const (
	// DefaultCountry is used whenever the configured country is not one of
	// [SupportedCountries].
	DefaultCountry = "nl"

	// CountryToken is replaced by the country code in the base URL template
	// and in header values.
	CountryToken = "{country}"

	// DefaultBaseURLTemplate is the customer API root per country.
	DefaultBaseURLTemplate = "https://my.youfone." + CountryToken + "/api"

	// SecurityKeyHeader carries the rotating session token in both
	// directions.
	SecurityKeyHeader = "securitykey"

	requestIDHeader = "X-Request-ID"
)

// API paths, relative to the per-country base URL.
const (
	PathLogin          = "authentication/login"
	PathAvailableCards = "Card/GetAvailableCards"
	PathSimOnlyUsage   = "Card/GetSimOnly"
	PathAbonnement     = "Products/SimOnly/GetAbonnement"
)

// SupportedCountries lists the country codes the API is served for.
var SupportedCountries = []string{"nl", "be"}

// ResolveCountry returns country when it is supported, DefaultCountry
// otherwise.
func ResolveCountry(country string) string {
	if slices.Contains(SupportedCountries, country) {
		return country
	}
	return DefaultCountry
}
