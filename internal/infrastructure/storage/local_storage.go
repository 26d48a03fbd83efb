package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Axioma-api/internal/application/ports"
)

var _ ports.LogoStorage = (*LocalStorage)(nil)

// LocalStorage escribe los objetos en disco; la API los sirve como estáticos bajo publicBaseURL.
type LocalStorage struct {
	dir           string
	publicBaseURL string
}

// NewLocalStorage construye el adaptador.
func NewLocalStorage(dir, publicBaseURL string) *LocalStorage {
	return &LocalStorage{dir: dir, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Upload guarda data en dir/key. Claves con ".." se rechazan.
func (s *LocalStorage) Upload(ctx context.Context, key, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean := path.Clean("/" + key)[1:]
	if clean == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("storage: clave inválida %q", key)
	}
	dst := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear directorio: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return s.publicBaseURL + "/" + clean, nil
}
