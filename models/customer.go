// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CustomerIDKey is the normalized key of the customer identifier in
// a [Customer] record.
const CustomerIDKey = "customer_id"

// Customer is the login response with its top-level keys normalized to
// snake_case (e.g. "customerId" becomes "customer_id"). Nested values keep
// the casing the API returned.
type Customer map[string]any

// ID returns the raw customer identifier as the API sent it (string or
// number). ok is false when the identifier is missing or null.
func (c Customer) ID() (id any, ok bool) {
	id, ok = c[CustomerIDKey]
	if !ok || id == nil {
		return nil, false
	}
	if s, isString := id.(string); isString && s == "" {
		return nil, false
	}
	return id, true
}

// HasSimOnly reports the "has_simonly" plan flag.
func (c Customer) HasSimOnly() bool {
	v, _ := c["has_simonly"].(bool)
	return v
}
