package bodega

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zapateria/bodega-api/internal/application/dto"
	"github.com/zapateria/bodega-api/internal/domain"
	"github.com/zapateria/bodega-api/internal/domain/entity"
	"github.com/zapateria/bodega-api/internal/domain/repository"
)

// UseCase operaciones de inventario de la bodega.
type UseCase struct {
	repo    repository.ZapatoRepository
	storage ObjectStorage
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(repo repository.ZapatoRepository, storage ObjectStorage) *UseCase {
	return &UseCase{repo: repo, storage: storage}
}

// CreateZapatos valida el lote completo, sube la imagen una sola vez y crea
// todos los zapatos en una transacción: o entran todos o ninguno. La URL de la
// imagen se comparte entre todos los ítems del lote.
func (uc *UseCase) CreateZapatos(ctx context.Context, items []dto.CreateZapatoInput, imagen dto.Imagen) ([]dto.ZapatoResponse, error) {
	if len(items) == 0 {
		return nil, domain.Validacion("Datos de zapatos no recibidos")
	}
	if len(imagen.Bytes) == 0 {
		return nil, domain.Validacion("Se requiere una imagen para el zapato")
	}
	for _, item := range items {
		if faltan := item.CamposFaltantes(); len(faltan) > 0 {
			return nil, domain.Validacion(
				"Todos los campos son obligatorios. Faltan: " + strings.Join(faltan, ", "))
		}
	}

	// La subida debe terminar (y dar la URL definitiva) antes de insertar fila alguna.
	nombre := fmt.Sprintf("images/%s_%s", uuid.New().String(), imagen.Nombre)
	url, err := uc.storage.Upload(ctx, nombre, imagen.ContentType, imagen.Bytes)
	if err != nil {
		return nil, fmt.Errorf("subir imagen: %w", err)
	}

	zapatos := make([]*entity.Zapato, 0, len(items))
	for _, in := range items {
		zapatos = append(zapatos, &entity.Zapato{
			Codigo:   in.Codigo,
			Tipo:     in.Tipo,
			Marca:    in.Marca,
			Modelo:   in.Modelo,
			Material: in.Material,
			Color:    in.Color,
			Talla:    in.Talla,
			Bodega:   *in.Bodega,
			Tienda1:  *in.Tienda1,
			Tienda2:  *in.Tienda2,
			Precio:   *in.Precio,
			Imagen:   url,
		})
	}
	if err := uc.repo.CreateBatch(ctx, zapatos); err != nil {
		return nil, fmt.Errorf("insertar lote: %w", err)
	}

	out := make([]dto.ZapatoResponse, 0, len(zapatos))
	for _, z := range zapatos {
		out = append(out, dto.ToZapatoResponse(z))
	}
	return out, nil
}

// PorTipo devuelve la vista agrupada del tipo. Lista vacía no es un error.
func (uc *UseCase) PorTipo(ctx context.Context, tipo string) ([]entity.ZapatoGrupo, error) {
	if tipo == "" {
		return nil, domain.Validacion("El tipo de zapato es obligatorio")
	}
	return uc.repo.GroupByTipo(ctx, tipo)
}

// Buscar busca zapatos con coincidencia parcial sobre los filtros presentes.
func (uc *UseCase) Buscar(ctx context.Context, filtro repository.ZapatoFiltro) ([]dto.ZapatoResponse, error) {
	if filtro.Vacio() {
		return nil, domain.Validacion("Se requiere al menos un parametro de busqueda")
	}
	zapatos, err := uc.repo.Search(ctx, filtro)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ZapatoResponse, 0, len(zapatos))
	for _, z := range zapatos {
		out = append(out, dto.ToZapatoResponse(z))
	}
	return out, nil
}

// PorCID devuelve el zapato o ErrZapatoNoEncontrado.
func (uc *UseCase) PorCID(ctx context.Context, cid int64) (*dto.ZapatoResponse, error) {
	z, err := uc.repo.FindByCID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, domain.ErrZapatoNoEncontrado
	}
	resp := dto.ToZapatoResponse(z)
	return &resp, nil
}

// ActualizarPorCID aplica una actualización parcial y devuelve la fila resultante.
func (uc *UseCase) ActualizarPorCID(ctx context.Context, cid int64, patch repository.ZapatoPatch) (*dto.ZapatoResponse, error) {
	if patch.Vacio() {
		return nil, domain.Validacion("No hay datos para actualizar")
	}
	z, err := uc.repo.UpdateByCID(ctx, cid, patch)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, domain.ErrZapatoNoEncontrado
	}
	resp := dto.ToZapatoResponse(z)
	return &resp, nil
}
