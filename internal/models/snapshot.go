// Package models holds the persistence representations of core state. The
// stored shapes are decoupled from the domain types so the on-disk format
// stays stable across refactors; mapping lives in internal/utils/mapping.
package models

// StoredEntry is the persisted form of one food entry.
type StoredEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Portion  float64 `json:"portion"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// StoredGoals is the persisted form of the daily goals.
type StoredGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// StoredSnapshot is the full persisted ledger state, keyed by slot name. A
// nil Goals marks a snapshot that carries no goals; all-zero goals are a
// legitimate stored value and must survive a round-trip.
type StoredSnapshot struct {
	Meals map[string][]StoredEntry `json:"meals"`
	Goals *StoredGoals             `json:"goals,omitempty"`
}
