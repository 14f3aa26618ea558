package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

func (t *TimeModel) SetCreatedNow() {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
}

func (t *TimeModel) SetUpdatedNow() {
	t.UpdatedAt = time.Now()
}
