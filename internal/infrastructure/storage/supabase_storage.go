// Package storage adaptadores de almacenamiento de objetos para logos.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Axioma-api/internal/application/ports"
)

var _ ports.LogoStorage = (*SupabaseStorage)(nil)

// SupabaseStorage sube objetos a Supabase Storage vía su API REST.
type SupabaseStorage struct {
	baseURL    string
	serviceKey string
	bucket     string
	timeout    time.Duration
}

// NewSupabaseStorage construye el adaptador. baseURL es la URL del proyecto (https://xyz.supabase.co).
func NewSupabaseStorage(baseURL, serviceKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		timeout:    15 * time.Second,
	}
}

// Upload sube (o reemplaza) el objeto y devuelve su URL pública.
func (s *SupabaseStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	timeout := s.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}

	agent := fiber.Post(s.objectURL(key))
	agent.Set(fiber.HeaderAuthorization, "Bearer "+s.serviceKey)
	agent.Set("apikey", s.serviceKey)
	agent.Set("x-upsert", "true")
	agent.ContentType(contentType)
	agent.Body(data)
	agent.Timeout(timeout)

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return "", fmt.Errorf("storage: supabase upload: %w", errs[0])
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("storage: supabase upload status %d: %s", status, truncate(string(body), 200))
	}
	return s.PublicURL(key), nil
}

// PublicURL URL pública del objeto (bucket público).
func (s *SupabaseStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, key)
}

func (s *SupabaseStorage) objectURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, key)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
