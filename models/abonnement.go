package models

// Abonnement is the plan/contract record of one SIM-only line.
type Abonnement struct {
	// GeneralInfo holds plan metadata such as the plan name. Keys are in the
	// API's camelCase form until normalized.
	GeneralInfo map[string]any `json:"generalInfo"`
}
