package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/zapateria/bodega-api/internal/domain/entity"
)

// ZapatoFiltro filtros de búsqueda. Los campos vacíos no restringen;
// los presentes se comparan con coincidencia parcial sin distinguir mayúsculas.
type ZapatoFiltro struct {
	Marca    string
	Modelo   string
	Material string
	Color    string
	Talla    string
}

// Vacio indica si no se suministró ningún filtro.
func (f ZapatoFiltro) Vacio() bool {
	return f.Marca == "" && f.Modelo == "" && f.Material == "" && f.Color == "" && f.Talla == ""
}

// ZapatoPatch actualización parcial: solo los punteros no nil se aplican.
type ZapatoPatch struct {
	Codigo   *string
	Tipo     *string
	Marca    *string
	Modelo   *string
	Material *string
	Color    *string
	Talla    *string
	Bodega   *int
	Tienda1  *int
	Tienda2  *int
	Precio   *decimal.Decimal
	Imagen   *string
}

// Vacio indica si el patch no trae ningún campo.
func (p ZapatoPatch) Vacio() bool {
	return p.Codigo == nil && p.Tipo == nil && p.Marca == nil && p.Modelo == nil &&
		p.Material == nil && p.Color == nil && p.Talla == nil && p.Bodega == nil &&
		p.Tienda1 == nil && p.Tienda2 == nil && p.Precio == nil && p.Imagen == nil
}

// ZapatoRepository puerto de persistencia del inventario.
type ZapatoRepository interface {
	// CreateBatch inserta todos los zapatos en una sola transacción y asigna sus CID.
	// O se insertan todos o ninguno.
	CreateBatch(ctx context.Context, zapatos []*entity.Zapato) error

	// GroupByTipo devuelve la vista agrupada por (marca, modelo, material, color, imagen)
	// ordenada lexicográficamente por esa clave. Lista vacía si el tipo no tiene filas.
	GroupByTipo(ctx context.Context, tipo string) ([]entity.ZapatoGrupo, error)

	// Search busca con coincidencia parcial case-insensitive sobre los filtros presentes.
	Search(ctx context.Context, filtro ZapatoFiltro) ([]*entity.Zapato, error)

	// FindByCID devuelve el zapato o nil si no existe.
	FindByCID(ctx context.Context, cid int64) (*entity.Zapato, error)

	// UpdateByCID aplica el patch y devuelve la fila actualizada, o nil si el CID no existe.
	UpdateByCID(ctx context.Context, cid int64, patch ZapatoPatch) (*entity.Zapato, error)
}
