package bodega

import (
	"context"

	"github.com/zapateria/bodega-api/internal/domain/entity"
)

// ObjectStorage puerto de salida hacia el bucket de imágenes.
// Upload sube el objeto, lo hace público y devuelve su URL estable.
type ObjectStorage interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// LabelRenderer puerto de salida hacia el servicio de renderizado de etiquetas.
// Render envía un documento ZPL y devuelve los bytes PNG de la etiqueta.
// Los fallos del servicio deben envolver domain.ErrServicioEtiquetas.
type LabelRenderer interface {
	Render(ctx context.Context, zpl string) ([]byte, error)
}

// ReporteGenerator puerto de salida para el reporte PDF de inventario.
type ReporteGenerator interface {
	GenerarReporte(ctx context.Context, tipo string, grupos []entity.ZapatoGrupo) ([]byte, error)
}
