package dto

// UpdateGoalsRequest replaces the ledger's daily goals wholesale. Nil fields
// and unusable values (negative, NaN, Inf) fall back per-field to the default
// goals.
type UpdateGoalsRequest struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fats     *float64 `json:"fats,omitempty"`
}
