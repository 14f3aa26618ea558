package requests

type CreateService struct {
	Name            string  `json:"name" validate:"required,max=150"`
	Description     string  `json:"description,omitempty" validate:"omitempty,max=500"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gte=15,lte=180"`
	Fee             float64 `json:"fee" validate:"required,gt=0"`
	MedicareRebate  float64 `json:"medicare_rebate" validate:"gte=0"`
}

type UpdateService struct {
	Name            string   `json:"name,omitempty" validate:"omitempty,max=150"`
	Description     string   `json:"description,omitempty" validate:"omitempty,max=500"`
	DurationMinutes int      `json:"duration_minutes,omitempty" validate:"omitempty,gte=15,lte=180"`
	Fee             *float64 `json:"fee,omitempty" validate:"omitempty,gt=0"`
	MedicareRebate  *float64 `json:"medicare_rebate,omitempty" validate:"omitempty,gte=0"`
	Active          *bool    `json:"active,omitempty"`
}
