package models

import "time"

// Category groups products. Each product belongs to exactly one category.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(255)" validate:"required,max=255"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=500"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
