package repositories

import (
	"github.com/shivamzowork/Product-catalog/internal/models"
)

// ProductListFilter narrows and paginates a product listing.
type ProductListFilter struct {
	Status     string // only products in this status; empty matches all
	CategoryID string // exact category reference; empty matches all
	Limit      int
	Page       int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetBySlug(slug, status string) (*models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(id string, fields map[string]interface{}) (*models.Product, error)
	Delete(id string) error
}
