package models

// CardTypeSimOnly is the only card type that is expanded into per-line
// usage and subscription details.
const CardTypeSimOnly = "SIM_ONLY"

// Card is one entry of the account's available cards list.
type Card struct {
	// CardType tags the kind of service, e.g. "SIM_ONLY".
	CardType string `json:"cardType"`

	// Options holds one payload per subscription line on this card.
	Options []Option `json:"options"`
}

// IsSimOnly reports whether the card is a SIM-only subscription.
func (c Card) IsSimOnly() bool {
	return c.CardType == CardTypeSimOnly
}

// Option identifies one subscription line. The payload is opaque to the
// client and is posted back verbatim to the usage and plan endpoints.
type Option map[string]any

// MSISDN returns the phone number of the line, if the option carries one.
func (o Option) MSISDN() string {
	switch v := o["msisdn"].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return toString(v)
	}
}

// AvailableCardsRequest is the body of the available-cards call.
type AvailableCardsRequest struct {
	CustomerID any `json:"customerId"`
}
