package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product publication states. Only published products are visible on
// public read paths.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Product represents a product in the storefront catalog.
type Product struct {
	ID               string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title            string         `json:"title" validate:"required,min=1,max=200"`
	Slug             string         `json:"slug" gorm:"uniqueIndex;type:varchar(255)" validate:"required,max=255"`
	Price            float64        `json:"price" validate:"gte=0"`
	CategoryID       string         `json:"categoryId" gorm:"type:varchar(36);index" validate:"required"`
	Category         *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Images           []Media        `json:"images,omitempty" gorm:"many2many:product_images;"`
	ShortDescription string         `json:"shortDescription,omitempty" validate:"omitempty,max=500"`
	Description      datatypes.JSON `json:"description,omitempty"` // rich text document
	SKU              *string        `json:"sku,omitempty" gorm:"uniqueIndex;type:varchar(100)"`
	Inventory        int            `json:"inventory" gorm:"default:0" validate:"gte=0"`
	Status           string         `json:"status" gorm:"type:varchar(20);default:draft" validate:"omitempty,oneof=draft published"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Docs       []Product `json:"docs"`
	TotalDocs  int64     `json:"totalDocs"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
}
