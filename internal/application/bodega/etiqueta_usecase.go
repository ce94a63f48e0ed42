package bodega

import (
	"context"

	"github.com/zapateria/bodega-api/internal/domain"
	"github.com/zapateria/bodega-api/internal/domain/etiqueta"
	"github.com/zapateria/bodega-api/internal/domain/repository"
)

// EtiquetaUseCase genera la etiqueta imprimible de un zapato.
type EtiquetaUseCase struct {
	repo     repository.ZapatoRepository
	renderer LabelRenderer
}

// NewEtiquetaUseCase construye el caso de uso de etiquetas.
func NewEtiquetaUseCase(repo repository.ZapatoRepository, renderer LabelRenderer) *EtiquetaUseCase {
	return &EtiquetaUseCase{repo: repo, renderer: renderer}
}

// Generar busca el zapato, construye el documento ZPL y lo envía al servicio de
// renderizado. Si el CID no existe no se contacta al servicio externo. El fallo
// del servicio se propaga envolviendo domain.ErrServicioEtiquetas.
func (uc *EtiquetaUseCase) Generar(ctx context.Context, cid int64) ([]byte, error) {
	z, err := uc.repo.FindByCID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, domain.ErrZapatoNoEncontrado
	}
	return uc.renderer.Render(ctx, etiqueta.BuildZPL(z))
}
