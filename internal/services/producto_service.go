package services

import (
	"context"

	"github.com/mariaztrillo/GLOWYAPI/internal/models"
	"github.com/mariaztrillo/GLOWYAPI/internal/repositories"
)

// ProductoService handles business logic related to catalog products.
type ProductoService struct {
	repo repositories.ProductoRepository
}

// NewProductoService creates a new ProductoService.
func NewProductoService(repo repositories.ProductoRepository) *ProductoService {
	return &ProductoService{
		repo: repo,
	}
}

// GetAllProductos retrieves all products.
func (s *ProductoService) GetAllProductos(ctx context.Context) ([]models.Producto, error) {
	return s.repo.GetAll(ctx)
}

// GetProductoByID retrieves a single product by its id.
func (s *ProductoService) GetProductoByID(ctx context.Context, id int64) (*models.Producto, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProducto persists a new product. The input is already normalized and
// validated by the handler; the repository assigns the id.
func (s *ProductoService) CreateProducto(ctx context.Context, producto *models.Producto) error {
	return s.repo.Create(ctx, producto)
}

// UpdateProducto replaces every field of an existing product except the id.
func (s *ProductoService) UpdateProducto(ctx context.Context, producto *models.Producto) error {
	return s.repo.Update(ctx, producto)
}

// DeleteProducto deletes a product by its id.
func (s *ProductoService) DeleteProducto(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
