package models

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Categoria is the closed set of skincare product categories.
type Categoria string

const (
	CategoriaSerum       Categoria = "Serum"
	CategoriaCleanser    Categoria = "Cleanser"
	CategoriaMoisturizer Categoria = "Moisturizer"
	CategoriaToner       Categoria = "Toner"
	CategoriaSunscreen   Categoria = "Sunscreen"
	CategoriaMask        Categoria = "Mask"
	CategoriaExfoliator  Categoria = "Exfoliator"
	CategoriaEyeCream    Categoria = "Eye Cream"
	CategoriaAmpoule     Categoria = "Ampoule"
	CategoriaEssence     Categoria = "Essence"
)

var categoriasValidas = []Categoria{
	CategoriaSerum,
	CategoriaCleanser,
	CategoriaMoisturizer,
	CategoriaToner,
	CategoriaSunscreen,
	CategoriaMask,
	CategoriaExfoliator,
	CategoriaEyeCream,
	CategoriaAmpoule,
	CategoriaEssence,
}

// ParseCategoria normalizes raw input to its canonical capitalized form
// ("serum" -> "Serum", "EYE CREAM" -> "Eye Cream") and reports whether it
// names a known category.
func ParseCategoria(raw string) (Categoria, bool) {
	// A Caser carries transform state, so build one per call.
	caser := cases.Title(language.Und)
	normalized := Categoria(caser.String(strings.TrimSpace(raw)))
	for _, c := range categoriasValidas {
		if normalized == c {
			return c, true
		}
	}
	return "", false
}

// NombresCategorias returns the canonical category names, for error messages.
func NombresCategorias() []string {
	nombres := make([]string, len(categoriasValidas))
	for i, c := range categoriasValidas {
		nombres[i] = string(c)
	}
	return nombres
}

// CategoriaValida is a validator rule that accepts any spelling of a known
// category. Register it under the "categoria" tag.
func CategoriaValida(fl validator.FieldLevel) bool {
	_, ok := ParseCategoria(fl.Field().String())
	return ok
}

// Producto represents a skincare product in the catalog.
type Producto struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Categoria   Categoria `json:"categoria"`
	Precio      float64   `json:"precio"`
	Stock       int       `json:"stock"`
	Descripcion *string   `json:"descripcion"`
}

// ProductoInput is the request body for create and replace operations.
// Precio and Stock are pointers so a missing field can be told apart from a
// legitimate zero value.
type ProductoInput struct {
	Nombre      string   `json:"nombre" validate:"required,min=3,max=150"`
	Categoria   string   `json:"categoria" validate:"required,categoria"`
	Precio      *float64 `json:"precio" validate:"required,gt=0,lte=999.99"`
	Stock       *int     `json:"stock" validate:"required,gte=0,lte=9999"`
	Descripcion *string  `json:"descripcion" validate:"omitempty,max=500"`
}

// Normalize trims whitespace from the free-text fields. A blank description
// becomes absent. Call it before validating so length rules apply to the
// trimmed values.
func (p *ProductoInput) Normalize() {
	p.Nombre = strings.TrimSpace(p.Nombre)
	p.Categoria = strings.TrimSpace(p.Categoria)
	if p.Descripcion != nil {
		trimmed := strings.TrimSpace(*p.Descripcion)
		if trimmed == "" {
			p.Descripcion = nil
		} else {
			p.Descripcion = &trimmed
		}
	}
}

// ToProducto converts validated input into a Producto, capitalizing the
// category and rounding the price to two decimals. ID is left for the
// repository to assign.
func (p *ProductoInput) ToProducto() *Producto {
	categoria, _ := ParseCategoria(p.Categoria)
	return &Producto{
		Nombre:      p.Nombre,
		Categoria:   categoria,
		Precio:      redondearPrecio(*p.Precio),
		Stock:       *p.Stock,
		Descripcion: p.Descripcion,
	}
}

// redondearPrecio rounds to two decimals through the decimal rendering of
// the float. Scaling with math.Round(v*100)/100 drifts on values like
// 10.005, whose nearest float is just below the half-cent boundary.
func redondearPrecio(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return rounded
}
