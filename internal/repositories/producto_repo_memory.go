package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mariaztrillo/GLOWYAPI/internal/models"
)

// MemoryProductoRepository is an in-memory implementation of
// ProductoRepository. It backs the service when no database is configured
// and doubles as the test repository.
type MemoryProductoRepository struct {
	mu        sync.RWMutex
	productos map[int64]models.Producto
	nextID    int64
}

// NewMemoryProductoRepository creates a new instance of MemoryProductoRepository.
func NewMemoryProductoRepository() *MemoryProductoRepository {
	return &MemoryProductoRepository{
		productos: make(map[int64]models.Producto),
	}
}

// GetAll returns all products ordered by id.
func (r *MemoryProductoRepository) GetAll(ctx context.Context) ([]models.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productos := make([]models.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		productos = append(productos, p)
	}
	sort.Slice(productos, func(i, j int) bool { return productos[i].ID < productos[j].ID })
	return productos, nil
}

// GetByID returns a product by its id.
func (r *MemoryProductoRepository) GetByID(ctx context.Context, id int64) (*models.Producto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	producto, ok := r.productos[id]
	if !ok {
		return nil, fmt.Errorf("producto %d: %w", id, ErrProductoNotFound)
	}
	return &producto, nil
}

// Create adds a new product and assigns the next id.
func (r *MemoryProductoRepository) Create(ctx context.Context, producto *models.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	producto.ID = r.nextID
	r.productos[producto.ID] = *producto
	return nil
}

// Update overwrites an existing product.
func (r *MemoryProductoRepository) Update(ctx context.Context, producto *models.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.productos[producto.ID]; !ok {
		return fmt.Errorf("producto %d: %w", producto.ID, ErrProductoNotFound)
	}
	r.productos[producto.ID] = *producto
	return nil
}

// Delete removes a product by its id.
func (r *MemoryProductoRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.productos[id]; !ok {
		return fmt.Errorf("producto %d: %w", id, ErrProductoNotFound)
	}
	delete(r.productos, id)
	return nil
}
