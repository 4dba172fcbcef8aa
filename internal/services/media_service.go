package services

import (
	"log"

	"github.com/shivamzowork/Product-catalog/internal/models"
	"github.com/shivamzowork/Product-catalog/internal/repositories"
	"github.com/shivamzowork/Product-catalog/pkg/rabbitmq"
)

// MediaService handles media metadata records and coordinates deletion of
// the underlying binaries.
type MediaService struct {
	repo   repositories.MediaRepository
	store  ObjectStore
	bucket string
	events EventPublisher
}

// NewMediaService creates a new MediaService.
func NewMediaService(repo repositories.MediaRepository, store ObjectStore, bucket string, events EventPublisher) *MediaService {
	return &MediaService{
		repo:   repo,
		store:  store,
		bucket: bucket,
		events: events,
	}
}

// CreateMediaRecord persists media metadata. The binary must already have
// been uploaded to object storage before this call. The actor must be an
// admin.
func (s *MediaService) CreateMediaRecord(actor *models.User, media *models.Media) models.Result[models.Media] {
	if !IsAdmin(actor) {
		return models.Fail[models.Media](adminRequiredMessage)
	}

	if err := s.repo.Create(media); err != nil {
		log.Printf("Error creating media record: %v", err)
		return models.Fail[models.Media]("could not create media record")
	}

	s.publish(rabbitmq.Event{Type: "media.created", Entity: "media", ID: media.ID})

	return models.OK(media, "media record created")
}

// DeleteMedia removes a media record and its stored binary. The binary is
// deleted first; the metadata record is only removed once the binary delete
// has succeeded, so a storage failure never leaves an orphaned binary behind
// a missing record. The actor must be an admin.
func (s *MediaService) DeleteMedia(actor *models.User, id string) models.Result[models.Media] {
	if !IsAdmin(actor) {
		return models.Fail[models.Media](adminRequiredMessage)
	}

	media, err := s.repo.GetByID(id)
	if err != nil {
		log.Printf("Error loading media %s for deletion: %v", id, err)
		return models.Fail[models.Media]("media not found")
	}

	if media.StoragePath != "" && s.store != nil {
		if err := s.store.Delete(s.bucket, media.StoragePath); err != nil {
			log.Printf("Error deleting stored object %s: %v", media.StoragePath, err)
			return models.Fail[models.Media]("stored object could not be deleted; media record kept")
		}
	}

	if err := s.repo.Delete(id); err != nil {
		log.Printf("Error deleting media record %s: %v", id, err)
		return models.Fail[models.Media]("stored object deleted but media record removal failed")
	}

	s.publish(rabbitmq.Event{Type: "media.deleted", Entity: "media", ID: id})

	return models.Result[models.Media]{Success: true, Message: "media deleted"}
}

func (s *MediaService) publish(event rabbitmq.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCatalogEvent(event); err != nil {
		log.Printf("Error publishing %s event: %v", event.Type, err)
	}
}
