package handlers

import (
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shivamzowork/Product-catalog/internal/middleware"
	"github.com/shivamzowork/Product-catalog/internal/models"
	"github.com/shivamzowork/Product-catalog/internal/services"
	"github.com/shivamzowork/Product-catalog/pkg/storage"
)

// MediaHandler handles HTTP requests for media: binary upload to object
// storage followed by metadata record creation.
type MediaHandler struct {
	service *services.MediaService
	store   *storage.Client
	bucket  string
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(service *services.MediaService, store *storage.Client, bucket string) *MediaHandler {
	return &MediaHandler{
		service: service,
		store:   store,
		bucket:  bucket,
	}
}

// RegisterRoutes registers the media routes with the Fiber app.
func (h *MediaHandler) RegisterRoutes(router fiber.Router) {
	mediaRoutes := router.Group("/media")
	mediaRoutes.Post("/", h.HandleUpload)
	mediaRoutes.Delete("/:id", h.HandleDeleteMedia)
}

// HandleUpload uploads the binary to object storage and then creates the
// metadata record pointing at it. The admin check runs before the upload so
// an unauthorized caller never stores a binary.
func (h *MediaHandler) HandleUpload(c *fiber.Ctx) error {
	actor := middleware.ActorFrom(c)
	if !services.IsAdmin(actor) {
		return c.Status(fiber.StatusForbidden).JSON(models.Fail[models.Media]("admin access required"))
	}

	alt := c.FormValue("alt")
	if alt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Alt text is required",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A file is required",
			"error":   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not read uploaded file",
		})
	}
	defer file.Close()

	// Without an object store the record keeps empty storage fields; the
	// binary can be attached later.
	var url, storagePath string
	if h.store != nil {
		storagePath = uuid.New().String() + filepath.Ext(fileHeader.Filename)
		contentType := fileHeader.Header.Get(fiber.HeaderContentType)
		url, err = h.store.Upload(h.bucket, storagePath, file, contentType)
		if err != nil {
			log.Printf("Error uploading %s: %v", storagePath, err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Could not upload file to object storage",
			})
		}
	}

	media := models.Media{
		Alt:         alt,
		URL:         url,
		StoragePath: storagePath,
	}
	result := h.service.CreateMediaRecord(actor, &media)
	if !result.Success {
		return c.Status(failureStatus(result.Message)).JSON(result)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleDeleteMedia removes a media record together with its stored binary.
func (h *MediaHandler) HandleDeleteMedia(c *fiber.Ctx) error {
	result := h.service.DeleteMedia(middleware.ActorFrom(c), c.Params("id"))
	if !result.Success {
		return c.Status(failureStatus(result.Message)).JSON(result)
	}
	return c.JSON(result)
}
