package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mariaztrillo/GLOWYAPI/internal/models"
	"github.com/mariaztrillo/GLOWYAPI/internal/repositories"
	"github.com/mariaztrillo/GLOWYAPI/internal/services"
)

// MockProductoRepository is a mock implementation of repositories.ProductoRepository
type MockProductoRepository struct {
	mock.Mock
}

func (m *MockProductoRepository) GetAll(ctx context.Context) ([]models.Producto, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Producto), args.Error(1)
}

func (m *MockProductoRepository) GetByID(ctx context.Context, id int64) (*models.Producto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Producto), args.Error(1)
}

func (m *MockProductoRepository) Create(ctx context.Context, producto *models.Producto) error {
	args := m.Called(ctx, producto)
	return args.Error(0)
}

func (m *MockProductoRepository) Update(ctx context.Context, producto *models.Producto) error {
	args := m.Called(ctx, producto)
	return args.Error(0)
}

func (m *MockProductoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductoService_GetAllProductos(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	service := services.NewProductoService(mockRepo)
	ctx := context.Background()

	expected := []models.Producto{
		{ID: 1, Nombre: "COSRX Snail Essence", Categoria: models.CategoriaEssence, Precio: 22.90, Stock: 40},
		{ID: 2, Nombre: "Beauty of Joseon Relief Sun", Categoria: models.CategoriaSunscreen, Precio: 15.50, Stock: 120},
	}

	mockRepo.On("GetAll", ctx).Return(expected, nil).Once()

	productos, err := service.GetAllProductos(ctx)

	assert.NoError(t, err)
	assert.Len(t, productos, 2)
	assert.Equal(t, expected, productos)
	mockRepo.AssertExpectations(t)
}

func TestProductoService_GetProductoByID(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	service := services.NewProductoService(mockRepo)
	ctx := context.Background()

	expected := &models.Producto{ID: 1, Nombre: "COSRX Snail Essence", Categoria: models.CategoriaEssence, Precio: 22.90, Stock: 40}

	// Test successful retrieval
	mockRepo.On("GetByID", ctx, int64(1)).Return(expected, nil).Once()
	producto, err := service.GetProductoByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, producto)
	mockRepo.AssertExpectations(t)

	// Test product not found
	notFound := fmt.Errorf("producto 99: %w", repositories.ErrProductoNotFound)
	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, notFound).Once()
	producto, err = service.GetProductoByID(ctx, 99)
	assert.Error(t, err)
	assert.Nil(t, producto)
	assert.ErrorIs(t, err, repositories.ErrProductoNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductoService_CreateProducto(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	service := services.NewProductoService(mockRepo)
	ctx := context.Background()

	nuevo := &models.Producto{Nombre: "Anua Heartleaf Toner", Categoria: models.CategoriaToner, Precio: 19.99, Stock: 30}

	// Test successful creation
	mockRepo.On("Create", ctx, nuevo).Return(nil).Once()
	err := service.CreateProducto(ctx, nuevo)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", ctx, nuevo).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProducto(ctx, nuevo)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductoService_UpdateProducto(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	service := services.NewProductoService(mockRepo)
	ctx := context.Background()

	actualizado := &models.Producto{ID: 1, Nombre: "Anua Heartleaf Toner 500ml", Categoria: models.CategoriaToner, Precio: 24.99, Stock: 25}

	// Test successful update
	mockRepo.On("Update", ctx, actualizado).Return(nil).Once()
	err := service.UpdateProducto(ctx, actualizado)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test update failure (product not found in repo)
	ausente := &models.Producto{ID: 99, Nombre: "No Existe", Categoria: models.CategoriaMask, Precio: 1.0, Stock: 1}
	notFound := fmt.Errorf("producto 99: %w", repositories.ErrProductoNotFound)
	mockRepo.On("Update", ctx, ausente).Return(notFound).Once()
	err = service.UpdateProducto(ctx, ausente)
	assert.ErrorIs(t, err, repositories.ErrProductoNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductoService_DeleteProducto(t *testing.T) {
	mockRepo := new(MockProductoRepository)
	service := services.NewProductoService(mockRepo)
	ctx := context.Background()

	// Test successful deletion
	mockRepo.On("Delete", ctx, int64(1)).Return(nil).Once()
	err := service.DeleteProducto(ctx, 1)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (product not found)
	notFound := fmt.Errorf("producto 99: %w", repositories.ErrProductoNotFound)
	mockRepo.On("Delete", ctx, int64(99)).Return(notFound).Once()
	err = service.DeleteProducto(ctx, 99)
	assert.ErrorIs(t, err, repositories.ErrProductoNotFound)
	mockRepo.AssertExpectations(t)
}
