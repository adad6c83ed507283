package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mariaztrillo/GLOWYAPI/internal/models"
	"github.com/mariaztrillo/GLOWYAPI/internal/repositories"
	"github.com/mariaztrillo/GLOWYAPI/internal/services"
)

// ProductoHandler handles HTTP requests for the product catalog.
type ProductoHandler struct {
	service  *services.ProductoService
	validate *validator.Validate
}

// NewProductoHandler creates a new ProductoHandler.
func NewProductoHandler(service *services.ProductoService) *ProductoHandler {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("categoria", models.CategoriaValida)
	return &ProductoHandler{
		service:  service,
		validate: v,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductoHandler) RegisterRoutes(router fiber.Router) {
	productos := router.Group("/productos")
	productos.Get("/", h.HandleGetProductos)
	productos.Get("/:id", h.HandleGetProductoByID)
	productos.Post("/", h.HandleCreateProducto)
	productos.Put("/:id", h.HandleUpdateProducto)
	productos.Delete("/:id", h.HandleDeleteProducto)
}

// HandleGetProductos retrieves the full product list.
func (h *ProductoHandler) HandleGetProductos(c *fiber.Ctx) error {
	productos, err := h.service.GetAllProductos(c.UserContext())
	if err != nil {
		log.Printf("Error getting all productos: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "No se pudieron obtener los productos",
		})
	}
	return c.JSON(productos)
}

// HandleGetProductoByID retrieves a single product by its id.
func (h *ProductoHandler) HandleGetProductoByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	producto, err := h.service.GetProductoByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductoNotFound) {
			return notFoundResponse(c)
		}
		log.Printf("Error getting producto %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "No se pudo obtener el producto",
		})
	}
	return c.JSON(producto)
}

// HandleCreateProducto validates the request body and persists a new product.
func (h *ProductoHandler) HandleCreateProducto(c *fiber.Ctx) error {
	var input models.ProductoInput
	if err := h.bindAndValidate(c, &input); err != nil {
		return validationResponse(c, err)
	}

	producto := input.ToProducto()
	if err := h.service.CreateProducto(c.UserContext(), producto); err != nil {
		log.Printf("Error creating producto: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "No se pudo crear el producto",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// HandleUpdateProducto replaces every field of an existing product.
func (h *ProductoHandler) HandleUpdateProducto(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	var input models.ProductoInput
	if err := h.bindAndValidate(c, &input); err != nil {
		return validationResponse(c, err)
	}

	producto := input.ToProducto()
	producto.ID = id
	if err := h.service.UpdateProducto(c.UserContext(), producto); err != nil {
		if errors.Is(err, repositories.ErrProductoNotFound) {
			return notFoundResponse(c)
		}
		log.Printf("Error updating producto %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "No se pudo actualizar el producto",
		})
	}
	return c.JSON(producto)
}

// HandleDeleteProducto removes a product by its id.
func (h *ProductoHandler) HandleDeleteProducto(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	if err := h.service.DeleteProducto(c.UserContext(), id); err != nil {
		if errors.Is(err, repositories.ErrProductoNotFound) {
			return notFoundResponse(c)
		}
		log.Printf("Error deleting producto %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "No se pudo eliminar el producto",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// errCuerpoInvalido flags a request body that could not be parsed at all.
var errCuerpoInvalido = errors.New("cuerpo de la petición inválido")

// bindAndValidate parses the request body into input, normalizes it and
// applies the validation rules. The caller translates any returned error
// with validationResponse.
func (h *ProductoHandler) bindAndValidate(c *fiber.Ctx, input *models.ProductoInput) error {
	if err := c.BodyParser(input); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return errCuerpoInvalido
	}
	input.Normalize()
	return h.validate.Struct(input)
}

// validationResponse writes the 422 response for a bind or validation error.
func validationResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, errCuerpoInvalido) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": []fiber.Map{
				{"field": "body", "message": "Cuerpo de la petición inválido"},
			},
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": detalleValidacion(validationErrors),
		})
	}

	log.Printf("Unexpected validation error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": "No se pudo validar la petición",
	})
}

func notFoundResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"detail": "Producto no encontrado",
	})
}

func invalidIDResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"detail": []fiber.Map{
			{"field": "id", "message": "El ID debe ser un número entero"},
		},
	})
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// detalleValidacion converts validator errors into field-level messages.
func detalleValidacion(validationErrors validator.ValidationErrors) []fiber.Map {
	detalle := make([]fiber.Map, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		detalle = append(detalle, fiber.Map{
			"field":   field,
			"message": mensajeValidacion(field, e),
		})
	}
	return detalle
}

func mensajeValidacion(field string, e validator.FieldError) string {
	switch field {
	case "nombre":
		switch e.Tag() {
		case "required":
			return "El nombre no puede estar vacío"
		case "min":
			return "El nombre debe tener al menos 3 caracteres"
		case "max":
			return "El nombre no puede exceder 150 caracteres"
		}
	case "categoria":
		if e.Tag() == "required" {
			return "La categoría no puede estar vacía"
		}
		return fmt.Sprintf("Categoría no válida. Debe ser una de: %s",
			strings.Join(models.NombresCategorias(), ", "))
	case "precio":
		switch e.Tag() {
		case "required":
			return "El precio es obligatorio"
		case "gt":
			return "El precio debe ser mayor a 0"
		case "lte":
			return "El precio no puede exceder 999.99€"
		}
	case "stock":
		switch e.Tag() {
		case "required":
			return "El stock es obligatorio"
		case "gte":
			return "El stock no puede ser negativo"
		case "lte":
			return "El stock no puede exceder 9999 unidades"
		}
	case "descripcion":
		return "La descripción no puede exceder 500 caracteres"
	}
	return fmt.Sprintf("El campo '%s' no cumple la regla '%s'", field, e.Tag())
}
