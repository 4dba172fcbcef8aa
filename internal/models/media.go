package models

import "time"

// Media is a metadata record pointing at a binary object held in external
// object storage. URL may be empty while the binary is still being attached.
type Media struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Alt         string    `json:"alt" validate:"required,max=255"`
	URL         string    `json:"url,omitempty" validate:"omitempty,url"`
	StoragePath string    `json:"storagePath,omitempty"` // key used to delete the binary later
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName keeps GORM from mangling the already-plural noun.
func (Media) TableName() string {
	return "media"
}
