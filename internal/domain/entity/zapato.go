package entity

import "github.com/shopspring/decimal"

// Zapato representa un ítem del inventario de la bodega.
// CID lo asigna la base de datos; el resto de campos son obligatorios al crear.
type Zapato struct {
	CID      int64
	Codigo   string
	Tipo     string
	Marca    string
	Modelo   string
	Material string
	Color    string
	Talla    string
	Bodega   int // existencias en bodega
	Tienda1  int // existencias en tienda 1
	Tienda2  int // existencias en tienda 2
	Precio   decimal.Decimal
	Imagen   string // URL pública de la imagen
}

// TallaDisponible existencias de una talla dentro de un grupo.
// Tienda1/Tienda2 van en nil cuando no hay existencias (< 1): el cliente
// las muestra como ausentes, no como cero.
type TallaDisponible struct {
	Talla   string `json:"talla"`
	Bodega  int    `json:"bodega"`
	Tienda1 *int   `json:"tienda1"`
	Tienda2 *int   `json:"tienda2"`
}

// ZapatoGrupo proyección agrupada por (marca, modelo, material, color, imagen)
// con las tallas agregadas. No se persiste; la construye la consulta.
type ZapatoGrupo struct {
	Marca             string            `json:"marca"`
	Modelo            string            `json:"modelo"`
	Material          string            `json:"material"`
	Color             string            `json:"color"`
	Imagen            string            `json:"imagen"`
	TallasDisponibles []TallaDisponible `json:"tallas_disponibles"`
}
