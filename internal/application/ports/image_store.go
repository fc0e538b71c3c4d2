package ports

import "context"

// ImageStore colaborador de almacenamiento binario para imágenes de
// producto: guarda los bytes y devuelve una URL opaca. La mecánica de
// almacenamiento (disco, bucket) es responsabilidad del adaptador.
type ImageStore interface {
	Store(ctx context.Context, filename string, data []byte) (string, error)
}
