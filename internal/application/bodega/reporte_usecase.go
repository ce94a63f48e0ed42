package bodega

import (
	"context"
	"fmt"

	"github.com/zapateria/bodega-api/internal/domain"
	"github.com/zapateria/bodega-api/internal/domain/repository"
)

// ReporteUseCase arma el reporte PDF de inventario de un tipo de zapato.
type ReporteUseCase struct {
	repo repository.ZapatoRepository
	gen  ReporteGenerator
}

// NewReporteUseCase construye el caso de uso de reportes.
func NewReporteUseCase(repo repository.ZapatoRepository, gen ReporteGenerator) *ReporteUseCase {
	return &ReporteUseCase{repo: repo, gen: gen}
}

// PorTipo genera el PDF con la vista agrupada del tipo indicado.
func (uc *ReporteUseCase) PorTipo(ctx context.Context, tipo string) ([]byte, error) {
	if tipo == "" {
		return nil, domain.Validacion("El tipo de zapato es obligatorio")
	}
	grupos, err := uc.repo.GroupByTipo(ctx, tipo)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.gen.GenerarReporte(ctx, tipo, grupos)
	if err != nil {
		return nil, fmt.Errorf("generar reporte: %w", err)
	}
	return pdf, nil
}
