package repositories

import (
	"context"
	"errors"

	"github.com/mariaztrillo/GLOWYAPI/internal/models"
)

// ErrProductoNotFound is returned when an id has no matching row. Handlers
// detect it with errors.Is to answer 404.
var ErrProductoNotFound = errors.New("producto no encontrado")

// ProductoRepository defines the interface for product data access.
type ProductoRepository interface {
	GetAll(ctx context.Context) ([]models.Producto, error)
	GetByID(ctx context.Context, id int64) (*models.Producto, error)
	Create(ctx context.Context, producto *models.Producto) error
	Update(ctx context.Context, producto *models.Producto) error
	Delete(ctx context.Context, id int64) error
}
