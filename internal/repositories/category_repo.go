package repositories

import (
	"github.com/shivamzowork/Product-catalog/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll(limit int) ([]models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
}
