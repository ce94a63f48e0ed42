// Package labelary implementa el puerto LabelRenderer contra el servicio HTTP
// de Labelary, que convierte documentos ZPL en imágenes PNG.
package labelary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zapateria/bodega-api/internal/application/bodega"
	"github.com/zapateria/bodega-api/internal/domain"
	"github.com/zapateria/bodega-api/pkg/config"
)

var _ bodega.LabelRenderer = (*Client)(nil)

// maxPNGBytes límite de lectura de la respuesta (una etiqueta 4x6 queda muy por debajo).
const maxPNGBytes = 5 << 20

// Client cliente HTTP del servicio de renderizado de etiquetas.
type Client struct {
	httpClient *http.Client
	baseURL    string
	density    string
	size       string
}

// NewClient construye el cliente con el timeout acotado de la configuración.
func NewClient(cfg config.EtiquetaConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		density:    cfg.Density,
		size:       cfg.Size,
	}
}

// Render envía el ZPL como cuerpo form-url-encoded y devuelve los bytes PNG.
// Cualquier fallo del servicio (red, timeout, status != 200) envuelve
// domain.ErrServicioEtiquetas para que el handler responda 502.
func (c *Client) Render(ctx context.Context, zpl string) ([]byte, error) {
	url := fmt.Sprintf("%s/v1/printers/%s/labels/%s/0/", c.baseURL, c.density, c.size)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(zpl))
	if err != nil {
		return nil, fmt.Errorf("labelary: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "image/png")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrServicioEtiquetas, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detalle, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return nil, fmt.Errorf("%w: status %d: %s",
			domain.ErrServicioEtiquetas, resp.StatusCode, strings.TrimSpace(string(detalle)))
	}

	png, err := io.ReadAll(io.LimitReader(resp.Body, maxPNGBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrServicioEtiquetas, err)
	}
	return png, nil
}
