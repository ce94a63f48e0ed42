package etiqueta_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapateria/bodega-api/internal/domain/entity"
	"github.com/zapateria/bodega-api/internal/domain/etiqueta"
)

func zapatoPrueba() *entity.Zapato {
	return &entity.Zapato{
		CID:      7,
		Codigo:   "ZAP-0007",
		Tipo:     "bota",
		Marca:    "Brahma",
		Modelo:   "Trekker",
		Material: "cuero",
		Color:    "negro",
		Talla:    "42",
		Bodega:   10,
		Tienda1:  2,
		Tienda2:  0,
		Precio:   decimal.NewFromInt(189900),
	}
}

func TestBuildZPL_DocumentoCompleto(t *testing.T) {
	zpl := etiqueta.BuildZPL(zapatoPrueba())

	require.True(t, strings.HasPrefix(zpl, "^XA"), "el documento debe abrir con ^XA")
	require.Contains(t, zpl, "^XZ", "el documento debe cerrar con ^XZ")

	// Dos copias apiladas de cada línea
	assert.Equal(t, 2, strings.Count(zpl, "^FDBrahma^FS"), "la marca aparece en ambas copias")
	assert.Equal(t, 2, strings.Count(zpl, "^FDModelo: Trekker^FS"))
	assert.Equal(t, 2, strings.Count(zpl, "^FDcuero negro^FS"), "material y color van en la misma línea")
	assert.Equal(t, 2, strings.Count(zpl, "^FD42^FS"))
	assert.Equal(t, 2, strings.Count(zpl, "^FDbota^FS"))

	// Código de barras lineal con el código del zapato
	assert.Equal(t, 2, strings.Count(zpl, "^BCN,100,Y,N,N^FDZAP-0007^FS"))
}

func TestBuildZPL_PosicionesDelDiseno(t *testing.T) {
	zpl := etiqueta.BuildZPL(zapatoPrueba())

	// Primera copia
	assert.Contains(t, zpl, "^FO30,80^A0N,80,80^FDBrahma^FS")
	assert.Contains(t, zpl, "^FO200,500^BCN,100,Y,N,N")
	// Segunda copia
	assert.Contains(t, zpl, "^FO30,650^A0N,80,80^FDBrahma^FS")
	assert.Contains(t, zpl, "^FO200,1050^BCN,100,Y,N,N")
}

func TestBuildZPL_NeutralizaControlesZPL(t *testing.T) {
	z := zapatoPrueba()
	z.Marca = "Mar^ca~X"

	zpl := etiqueta.BuildZPL(z)

	assert.NotContains(t, zpl, "^FDMar^ca", "un ^ dentro del dato rompería el documento")
	assert.Contains(t, zpl, "^FDMar ca X^FS")
}
