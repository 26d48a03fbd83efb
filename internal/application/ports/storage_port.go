package ports

import "context"

// LogoStorage almacenamiento de objetos para logos. Devuelve la URL pública del archivo.
type LogoStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (publicURL string, err error)
}
