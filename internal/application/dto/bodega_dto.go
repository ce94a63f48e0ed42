package dto

import (
	"github.com/shopspring/decimal"

	"github.com/zapateria/bodega-api/internal/domain/entity"
)

// CreateZapatoInput un zapato del lote a crear. Los numéricos van como punteros
// para distinguir "campo ausente" de cero al validar.
type CreateZapatoInput struct {
	Codigo   string           `json:"codigo"`
	Tipo     string           `json:"tipo"`
	Marca    string           `json:"marca"`
	Modelo   string           `json:"modelo"`
	Material string           `json:"material"`
	Color    string           `json:"color"`
	Talla    string           `json:"talla"`
	Bodega   *int             `json:"bodega"`
	Tienda1  *int             `json:"tienda1"`
	Tienda2  *int             `json:"tienda2"`
	Precio   *decimal.Decimal `json:"precio"`
}

// CamposFaltantes devuelve los nombres de los campos obligatorios ausentes.
func (in CreateZapatoInput) CamposFaltantes() []string {
	var faltan []string
	texto := []struct {
		nombre, valor string
	}{
		{"codigo", in.Codigo}, {"tipo", in.Tipo}, {"marca", in.Marca},
		{"modelo", in.Modelo}, {"material", in.Material}, {"color", in.Color},
		{"talla", in.Talla},
	}
	for _, c := range texto {
		if c.valor == "" {
			faltan = append(faltan, c.nombre)
		}
	}
	if in.Bodega == nil {
		faltan = append(faltan, "bodega")
	}
	if in.Tienda1 == nil {
		faltan = append(faltan, "tienda1")
	}
	if in.Tienda2 == nil {
		faltan = append(faltan, "tienda2")
	}
	if in.Precio == nil {
		faltan = append(faltan, "precio")
	}
	return faltan
}

// Imagen archivo de imagen recibido en el multipart, compartido por todo el lote.
type Imagen struct {
	Nombre      string
	ContentType string
	Bytes       []byte
}

// BuscarRequest filtros de búsqueda; al menos uno debe venir con valor.
type BuscarRequest struct {
	Marca    string `json:"marca"`
	Modelo   string `json:"modelo"`
	Material string `json:"material"`
	Color    string `json:"color"`
	Talla    string `json:"talla"`
}

// TipoRequest entrada de la vista agrupada por tipo.
type TipoRequest struct {
	Tipo string `json:"tipo"`
}

// CIDRequest entrada con el identificador del zapato. CID queda sin tipar
// porque los clientes lo envían como número o como texto.
type CIDRequest struct {
	CID interface{} `json:"cid"`
}

// UpdateZapatoRequest actualización parcial por CID; solo se aplican los
// campos presentes.
type UpdateZapatoRequest struct {
	CID      interface{}      `json:"cid"`
	Codigo   *string          `json:"codigo"`
	Tipo     *string          `json:"tipo"`
	Marca    *string          `json:"marca"`
	Modelo   *string          `json:"modelo"`
	Material *string          `json:"material"`
	Color    *string          `json:"color"`
	Talla    *string          `json:"talla"`
	Bodega   *int             `json:"bodega"`
	Tienda1  *int             `json:"tienda1"`
	Tienda2  *int             `json:"tienda2"`
	Precio   *decimal.Decimal `json:"precio"`
	Imagen   *string          `json:"imagen"`
}

// ZapatoResponse salida de un zapato.
type ZapatoResponse struct {
	CID      int64           `json:"cid"`
	Codigo   string          `json:"codigo"`
	Tipo     string          `json:"tipo"`
	Marca    string          `json:"marca"`
	Modelo   string          `json:"modelo"`
	Material string          `json:"material"`
	Color    string          `json:"color"`
	Talla    string          `json:"talla"`
	Bodega   int             `json:"bodega"`
	Tienda1  int             `json:"tienda1"`
	Tienda2  int             `json:"tienda2"`
	Precio   decimal.Decimal `json:"precio"`
	Imagen   string          `json:"imagen"`
}

// ZapatosResponse resultado de creación o búsqueda de zapatos.
type ZapatosResponse struct {
	OK   bool             `json:"ok"`
	Msg  string           `json:"msg,omitempty"`
	Data []ZapatoResponse `json:"data"`
}

// GruposResponse vista agrupada por tipo.
type GruposResponse struct {
	OK   bool                 `json:"ok"`
	Data []entity.ZapatoGrupo `json:"data"`
}

// ZapatoSingleResponse un solo zapato.
type ZapatoSingleResponse struct {
	OK   bool           `json:"ok"`
	Data ZapatoResponse `json:"data"`
}

// ToZapatoResponse mapea la entidad a su DTO de salida.
func ToZapatoResponse(z *entity.Zapato) ZapatoResponse {
	return ZapatoResponse{
		CID:      z.CID,
		Codigo:   z.Codigo,
		Tipo:     z.Tipo,
		Marca:    z.Marca,
		Modelo:   z.Modelo,
		Material: z.Material,
		Color:    z.Color,
		Talla:    z.Talla,
		Bodega:   z.Bodega,
		Tienda1:  z.Tienda1,
		Tienda2:  z.Tienda2,
		Precio:   z.Precio,
		Imagen:   z.Imagen,
	}
}
