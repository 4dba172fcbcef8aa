package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shivamzowork/Product-catalog/internal/models"
)

// GORMMediaRepository is a GORM implementation of MediaRepository.
type GORMMediaRepository struct {
	db *gorm.DB
}

// NewGORMMediaRepository creates a new instance of GORMMediaRepository.
func NewGORMMediaRepository(db *gorm.DB) *GORMMediaRepository {
	return &GORMMediaRepository{
		db: db,
	}
}

// GetByID retrieves a single media record by its ID.
func (r *GORMMediaRepository) GetByID(id string) (*models.Media, error) {
	var media models.Media
	if err := r.db.First(&media, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("media with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get media by ID %s: %w", id, err)
	}
	return &media, nil
}

// Create creates a new media record in the database.
func (r *GORMMediaRepository) Create(media *models.Media) error {
	if media.ID == "" {
		media.ID = uuid.New().String()
	}
	if err := r.db.Create(media).Error; err != nil {
		return fmt.Errorf("failed to create media: %w", err)
	}
	return nil
}

// Delete deletes a media record by its ID from the database.
func (r *GORMMediaRepository) Delete(id string) error {
	res := r.db.Delete(&models.Media{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete media: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("media with ID %s not found for deletion", id)
	}
	return nil
}
