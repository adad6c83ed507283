package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mariaztrillo/GLOWYAPI/internal/models"
)

// SQLProductoRepository is a database/sql implementation of
// ProductoRepository. Every method issues exactly one parameterized
// statement; user input never reaches the SQL text itself.
type SQLProductoRepository struct {
	db *sql.DB
}

// NewSQLProductoRepository creates a new instance of SQLProductoRepository.
func NewSQLProductoRepository(db *sql.DB) *SQLProductoRepository {
	return &SQLProductoRepository{
		db: db,
	}
}

const createTableStmt = `
CREATE TABLE IF NOT EXISTS productos (
	id INT AUTO_INCREMENT PRIMARY KEY,
	nombre VARCHAR(150) NOT NULL,
	categoria VARCHAR(50) NOT NULL,
	precio DECIMAL(5,2) NOT NULL,
	stock INT NOT NULL,
	descripcion VARCHAR(500)
)`

// Migrate creates the productos table if it does not exist yet.
func (r *SQLProductoRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableStmt); err != nil {
		return fmt.Errorf("failed to create productos table: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProducto(row rowScanner) (*models.Producto, error) {
	var producto models.Producto
	var descripcion sql.NullString
	if err := row.Scan(
		&producto.ID,
		&producto.Nombre,
		&producto.Categoria,
		&producto.Precio,
		&producto.Stock,
		&descripcion,
	); err != nil {
		return nil, err
	}
	if descripcion.Valid {
		producto.Descripcion = &descripcion.String
	}
	return &producto, nil
}

// GetAll retrieves all products ordered by id.
func (r *SQLProductoRepository) GetAll(ctx context.Context) ([]models.Producto, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, nombre, categoria, precio, stock, descripcion FROM productos ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get all productos: %w", err)
	}
	defer rows.Close()

	productos := make([]models.Producto, 0)
	for rows.Next() {
		producto, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan producto: %w", err)
		}
		productos = append(productos, *producto)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate productos: %w", err)
	}
	return productos, nil
}

// GetByID retrieves a single product by its id.
func (r *SQLProductoRepository) GetByID(ctx context.Context, id int64) (*models.Producto, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, nombre, categoria, precio, stock, descripcion FROM productos WHERE id = ?", id)
	producto, err := scanProducto(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("producto %d: %w", id, ErrProductoNotFound)
		}
		return nil, fmt.Errorf("failed to get producto %d: %w", id, err)
	}
	return producto, nil
}

// Create inserts a new product and assigns the generated id to it.
func (r *SQLProductoRepository) Create(ctx context.Context, producto *models.Producto) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO productos (nombre, categoria, precio, stock, descripcion) VALUES (?, ?, ?, ?, ?)",
		producto.Nombre, producto.Categoria, producto.Precio, producto.Stock, producto.Descripcion)
	if err != nil {
		return fmt.Errorf("failed to create producto: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read generated id: %w", err)
	}
	producto.ID = id
	return nil
}

// Update overwrites every field of an existing product except the id.
func (r *SQLProductoRepository) Update(ctx context.Context, producto *models.Producto) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE productos SET nombre = ?, categoria = ?, precio = ?, stock = ?, descripcion = ? WHERE id = ?",
		producto.Nombre, producto.Categoria, producto.Precio, producto.Stock, producto.Descripcion, producto.ID)
	if err != nil {
		return fmt.Errorf("failed to update producto %d: %w", producto.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("producto %d: %w", producto.ID, ErrProductoNotFound)
	}
	return nil
}

// Delete removes a product by its id.
func (r *SQLProductoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM productos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete producto %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("producto %d: %w", id, ErrProductoNotFound)
	}
	return nil
}
