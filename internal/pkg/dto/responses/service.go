package responses

type Service struct {
	ServiceID       int64   `json:"id"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Fee             float64 `json:"fee"`
	MedicareRebate  float64 `json:"medicare_rebate"`
	GapAmount       float64 `json:"gap_amount"`
	Active          bool    `json:"active"`
}
