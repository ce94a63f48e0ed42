// Package etiqueta construye el documento ZPL de la etiqueta de un zapato.
//
// La etiqueta es de 4x6 pulgadas y lleva dos copias apiladas del mismo bloque
// (la etiqueta se corta por la mitad): marca, modelo, material y color, talla,
// tipo y un código de barras Code 128 con el código del zapato.
package etiqueta

import (
	"fmt"
	"strings"

	"github.com/zapateria/bodega-api/internal/domain/entity"
)

// BuildZPL genera el documento ZPL de la etiqueta para un zapato.
func BuildZPL(z *entity.Zapato) string {
	var b strings.Builder
	b.WriteString("^XA\n")
	// Copia superior
	writeBloque(&b, z, 80, 190, 300, 50, 420, 500)
	b.WriteString("\n")
	// Copia inferior: las posiciones no son un desplazamiento uniforme de la
	// superior (la talla sube respecto al resto del bloque)
	writeBloque(&b, z, 650, 750, 850, 650, 950, 1050)
	b.WriteString("^XZ\n")
	return b.String()
}

// writeBloque escribe una copia del bloque con las posiciones verticales dadas.
func writeBloque(b *strings.Builder, z *entity.Zapato, yMarca, yModelo, yMaterial, yTalla, yTipo, yBarra int) {
	fmt.Fprintf(b, "^FO30,%d^A0N,80,80^FD%s^FS\n", yMarca, campo(z.Marca))
	fmt.Fprintf(b, "^FO50,%d^A0N,90,90^FDModelo: %s^FS\n", yModelo, campo(z.Modelo))
	fmt.Fprintf(b, "^FO50,%d^A0N,90,90^FD%s %s^FS\n", yMaterial, campo(z.Material), campo(z.Color))
	fmt.Fprintf(b, "^FO550,%d^A0N,100,100^FD%s^FS\n", yTalla, campo(z.Talla))
	fmt.Fprintf(b, "^FO30,%d^A0N,60,60^FD%s^FS\n", yTipo, campo(z.Tipo))
	fmt.Fprintf(b, "^FO200,%d^BCN,100,Y,N,N^FD%s^FS\n", yBarra, campo(z.Codigo))
}

// campo neutraliza los caracteres de control ZPL dentro de un dato
// (^ y ~ inician comandos; no deben viajar en un ^FD).
func campo(s string) string {
	s = strings.ReplaceAll(s, "^", " ")
	s = strings.ReplaceAll(s, "~", " ")
	return s
}
