package storage

import (
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
)

// Client wraps the object storage API consumed for product images. Binaries
// live in a bucket; the catalog only keeps metadata records pointing at them.
type Client struct {
	api *storage_go.Client
}

// New creates a storage client for the given endpoint and anonymous key.
func New(url, anonKey string) *Client {
	return &Client{
		api: storage_go.NewClient(url, anonKey, nil),
	}
}

// Upload stores the binary under path in bucket and returns its public URL.
func (c *Client) Upload(bucket, path string, body io.Reader, contentType string) (string, error) {
	_, err := c.api.UploadFile(bucket, path, body, storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", path, bucket, err)
	}
	return c.PublicURL(bucket, path), nil
}

// Delete removes the binary stored under path in bucket.
func (c *Client) Delete(bucket, path string) error {
	if _, err := c.api.RemoveFile(bucket, []string{path}); err != nil {
		return fmt.Errorf("failed to delete %s from bucket %s: %w", path, bucket, err)
	}
	return nil
}

// PublicURL returns the public, anonymously readable URL for path in bucket.
func (c *Client) PublicURL(bucket, path string) string {
	res := c.api.GetPublicUrl(bucket, path)
	return res.SignedURL
}
