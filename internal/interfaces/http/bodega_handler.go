package http

import (
	"encoding/json"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/zapateria/bodega-api/internal/application/bodega"
	"github.com/zapateria/bodega-api/internal/application/dto"
	"github.com/zapateria/bodega-api/internal/domain/repository"
	"github.com/zapateria/bodega-api/pkg/logger"
)

// BodegaHandler maneja el inventario de zapatos: altas, consultas, etiquetas y reportes.
type BodegaHandler struct {
	uc         *bodega.UseCase
	etiquetaUC *bodega.EtiquetaUseCase
	reporteUC  *bodega.ReporteUseCase
	log        *logger.Logger
}

// NewBodegaHandler construye el handler de bodega.
func NewBodegaHandler(uc *bodega.UseCase, etiquetaUC *bodega.EtiquetaUseCase, reporteUC *bodega.ReporteUseCase, log *logger.Logger) *BodegaHandler {
	return &BodegaHandler{uc: uc, etiquetaUC: etiquetaUC, reporteUC: reporteUC, log: log}
}

// CreateZapatos godoc
// @Summary      Registrar un lote de zapatos con su imagen
// @Tags         bodega
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true  "imagen compartida por el lote"
// @Param        zapatos  formData  string  true  "arreglo JSON de zapatos"
// @Success      201  {object}  dto.ZapatosResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/create-zapatos [post]
func (h *BodegaHandler) CreateZapatos(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Se requiere una imagen para el zapato"))
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, h.log, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var items []dto.CreateZapatoInput
	if raw := c.FormValue("zapatos"); raw == "" || json.Unmarshal([]byte(raw), &items) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Datos de zapatos no recibidos"))
	}

	imagen := dto.Imagen{
		Nombre:      fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Bytes:       data,
	}
	creados, err := h.uc.CreateZapatos(c.Context(), items, imagen)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ZapatosResponse{
		OK:   true,
		Msg:  "Zapatos registrados exitosamente",
		Data: creados,
	})
}

// ZapatosPorTipo godoc
// @Summary      Vista agrupada del inventario de un tipo
// @Tags         bodega
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TipoRequest  true  "tipo"
// @Success      200   {object}  dto.GruposResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/zapatos-por-tipo [post]
func (h *BodegaHandler) ZapatosPorTipo(c *fiber.Ctx) error {
	var in dto.TipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("El tipo de zapato es obligatorio"))
	}
	grupos, err := h.uc.PorTipo(c.Context(), in.Tipo)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.GruposResponse{OK: true, Data: grupos})
}

// GetZapatoByFuncion godoc
// @Summary      Buscar zapatos por coincidencia parcial
// @Tags         bodega
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BuscarRequest  true  "al menos un filtro"
// @Success      200   {object}  dto.ZapatosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/get-zapato-by-funcion [post]
func (h *BodegaHandler) GetZapatoByFuncion(c *fiber.Ctx) error {
	var in dto.BuscarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Se requiere al menos un parametro de busqueda"))
	}
	zapatos, err := h.uc.Buscar(c.Context(), repository.ZapatoFiltro{
		Marca:    in.Marca,
		Modelo:   in.Modelo,
		Material: in.Material,
		Color:    in.Color,
		Talla:    in.Talla,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.ZapatosResponse{OK: true, Data: zapatos})
}

// GetZapatoCID godoc
// @Summary      Obtener un zapato por CID
// @Tags         bodega
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CIDRequest  true  "cid numérico o texto numérico"
// @Success      200   {object}  dto.ZapatoSingleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/getZapatoCID [post]
func (h *BodegaHandler) GetZapatoCID(c *fiber.Ctx) error {
	var in dto.CIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("CID inválido o no proporcionado"))
	}
	cid, ok := parseCID(in.CID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("CID inválido o no proporcionado"))
	}
	zapato, err := h.uc.PorCID(c.Context(), cid)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.ZapatoSingleResponse{OK: true, Data: *zapato})
}

// UpdateZapato godoc
// @Summary      Actualizar campos de un zapato por CID
// @Tags         bodega
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateZapatoRequest  true  "cid + campos a cambiar"
// @Success      200   {object}  dto.ZapatoSingleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/update-zapato [post]
func (h *BodegaHandler) UpdateZapato(c *fiber.Ctx) error {
	var in dto.UpdateZapatoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("CID inválido o no proporcionado"))
	}
	cid, ok := parseCID(in.CID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("CID inválido o no proporcionado"))
	}
	zapato, err := h.uc.ActualizarPorCID(c.Context(), cid, repository.ZapatoPatch{
		Codigo:   in.Codigo,
		Tipo:     in.Tipo,
		Marca:    in.Marca,
		Modelo:   in.Modelo,
		Material: in.Material,
		Color:    in.Color,
		Talla:    in.Talla,
		Bodega:   in.Bodega,
		Tienda1:  in.Tienda1,
		Tienda2:  in.Tienda2,
		Precio:   in.Precio,
		Imagen:   in.Imagen,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.ZapatoSingleResponse{OK: true, Data: *zapato})
}

// GenerarEtiqueta godoc
// @Summary      Generar la etiqueta PNG imprimible de un zapato
// @Tags         bodega
// @Accept       json
// @Produce      png
// @Param        body  body  dto.CIDRequest  true  "cid"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/generar-etiqueta [post]
func (h *BodegaHandler) GenerarEtiqueta(c *fiber.Ctx) error {
	var in dto.CIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("CID inválido o no proporcionado"))
	}
	cid, ok := parseCID(in.CID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("CID inválido o no proporcionado"))
	}
	png, err := h.etiquetaUC.Generar(c.Context(), cid)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, "inline; filename=etiqueta.png")
	return c.Send(png)
}

// ReporteInventario godoc
// @Summary      Reporte PDF del inventario de un tipo
// @Tags         bodega
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.TipoRequest  true  "tipo"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/bodega/reporte-inventario [post]
func (h *BodegaHandler) ReporteInventario(c *fiber.Ctx) error {
	var in dto.TipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("El tipo de zapato es obligatorio"))
	}
	pdf, err := h.reporteUC.PorTipo(c.Context(), in.Tipo)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "inline; filename=reporte-inventario.pdf")
	return c.Send(pdf)
}
