// Package blobstore implementa el colaborador de almacenamiento de
// imágenes sobre disco local (directorio de uploads servible como
// estático).
package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
)

var _ ports.ImageStore = (*DiskStore)(nil)

// DiskStore guarda binarios bajo un directorio y devuelve URLs relativas
// a una base configurable (ej. /uploads).
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore crea el directorio si no existe.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Store escribe los bytes con un nombre aleatorio conservando la
// extensión original y devuelve la URL pública.
func (s *DiskStore) Store(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := uuid.New().String()
	if ext := filepath.Ext(filename); ext != "" {
		name += ext
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
