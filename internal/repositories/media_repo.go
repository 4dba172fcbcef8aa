package repositories

import (
	"github.com/shivamzowork/Product-catalog/internal/models"
)

// MediaRepository defines the interface for media metadata access.
type MediaRepository interface {
	GetByID(id string) (*models.Media, error)
	Create(media *models.Media) error
	Delete(id string) error
}
