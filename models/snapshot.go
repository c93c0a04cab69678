// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// SimInfo groups everything collected for one SIM-only line.
type SimInfo struct {
	// Options is the raw option payload that identifies the line.
	Options Option `json:"options"`

	// Usage holds one entry per usage indicator.
	Usage []UsageSnapshot `json:"usage"`

	// AbonnementInfo is the plan's general-info section with normalized keys.
	AbonnementInfo map[string]any `json:"abonnement_info"`
}

// AccountSnapshot is the result of one successful aggregation run.
type AccountSnapshot struct {
	Customer Customer  `json:"customer"`
	SimInfo  []SimInfo `json:"sim_info"`
}

// DataResult is what the embedding application receives: either the
// snapshot or an error descriptor, never both.
//
// JSON form on success: {"customer": {...}, "sim_info": [...]}
// JSON form on failure: {"error": "<message>"}
type DataResult struct {
	Snapshot *AccountSnapshot
	Error    string
}

// NewDataResult wraps a successful snapshot.
func NewDataResult(snapshot *AccountSnapshot) DataResult {
	return DataResult{Snapshot: snapshot}
}

// NewErrorResult builds an error descriptor from err.
func NewErrorResult(err error) DataResult {
	if err == nil {
		return DataResult{Error: "unknown error"}
	}
	return DataResult{Error: err.Error()}
}

// Failed reports whether the result is an error descriptor.
func (r DataResult) Failed() bool {
	return r.Error != "" || r.Snapshot == nil
}

// MarshalJSON renders the success or the error shape.
func (r DataResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		msg := r.Error
		if msg == "" {
			msg = "no data"
		}
		return json.Marshal(struct {
			Error string `json:"error"`
		}{Error: msg})
	}

	simInfo := r.Snapshot.SimInfo
	if simInfo == nil {
		simInfo = []SimInfo{}
	}
	customer := r.Snapshot.Customer
	if customer == nil {
		customer = Customer{}
	}

	return json.Marshal(AccountSnapshot{Customer: customer, SimInfo: simInfo})
}
