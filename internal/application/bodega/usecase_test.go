package bodega_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapateria/bodega-api/internal/application/bodega"
	"github.com/zapateria/bodega-api/internal/application/dto"
	"github.com/zapateria/bodega-api/internal/domain"
	"github.com/zapateria/bodega-api/internal/domain/entity"
	"github.com/zapateria/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeZapatoRepo repositorio en memoria indexado por CID.
type fakeZapatoRepo struct {
	porCID  map[int64]*entity.Zapato
	grupos  []entity.ZapatoGrupo
	nextCID int64
}

func newFakeZapatoRepo(zapatos ...*entity.Zapato) *fakeZapatoRepo {
	f := &fakeZapatoRepo{porCID: make(map[int64]*entity.Zapato)}
	for _, z := range zapatos {
		copia := *z
		f.porCID[z.CID] = &copia
		if z.CID > f.nextCID {
			f.nextCID = z.CID
		}
	}
	return f
}

func (f *fakeZapatoRepo) CreateBatch(_ context.Context, zapatos []*entity.Zapato) error {
	for _, z := range zapatos {
		f.nextCID++
		z.CID = f.nextCID
		copia := *z
		f.porCID[z.CID] = &copia
	}
	return nil
}

func (f *fakeZapatoRepo) GroupByTipo(_ context.Context, _ string) ([]entity.ZapatoGrupo, error) {
	return f.grupos, nil
}

func (f *fakeZapatoRepo) Search(_ context.Context, filtro repository.ZapatoFiltro) ([]*entity.Zapato, error) {
	var out []*entity.Zapato
	for _, z := range f.porCID {
		if filtro.Marca != "" && !strings.Contains(strings.ToLower(z.Marca), strings.ToLower(filtro.Marca)) {
			continue
		}
		copia := *z
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakeZapatoRepo) FindByCID(_ context.Context, cid int64) (*entity.Zapato, error) {
	z, ok := f.porCID[cid]
	if !ok {
		return nil, nil
	}
	copia := *z
	return &copia, nil
}

func (f *fakeZapatoRepo) UpdateByCID(_ context.Context, cid int64, patch repository.ZapatoPatch) (*entity.Zapato, error) {
	z, ok := f.porCID[cid]
	if !ok {
		return nil, nil
	}
	if patch.Color != nil {
		z.Color = *patch.Color
	}
	if patch.Bodega != nil {
		z.Bodega = *patch.Bodega
	}
	copia := *z
	return &copia, nil
}

// fakeStorage cuenta subidas y devuelve una URL determinística.
type fakeStorage struct {
	subidas int
	nombres []string
}

func (f *fakeStorage) Upload(_ context.Context, name, _ string, _ []byte) (string, error) {
	f.subidas++
	f.nombres = append(f.nombres, name)
	return "https://storage.example.com/" + name, nil
}

// fakeRenderer registra los ZPL recibidos.
type fakeRenderer struct {
	llamadas int
	ultimo   string
	png      []byte
	err      error
}

func (f *fakeRenderer) Render(_ context.Context, zpl string) ([]byte, error) {
	f.llamadas++
	f.ultimo = zpl
	if f.err != nil {
		return nil, f.err
	}
	return f.png, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func intPtr(n int) *int { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func itemValido() dto.CreateZapatoInput {
	return dto.CreateZapatoInput{
		Codigo:   "ZAP-001",
		Tipo:     "deportivo",
		Marca:    "Nike",
		Modelo:   "Air Max",
		Material: "cuero",
		Color:    "negro",
		Talla:    "42",
		Bodega:   intPtr(10),
		Tienda1:  intPtr(2),
		Tienda2:  intPtr(0),
		Precio:   decPtr("259900"),
	}
}

func imagenValida() dto.Imagen {
	return dto.Imagen{Nombre: "foto.png", ContentType: "image/png", Bytes: []byte{0x89, 'P', 'N', 'G'}}
}

func zapatoDePrueba() *entity.Zapato {
	return &entity.Zapato{
		CID:      5,
		Codigo:   "ZAP-001",
		Tipo:     "deportivo",
		Marca:    "Nike",
		Modelo:   "Air Max",
		Material: "cuero",
		Color:    "negro",
		Talla:    "42",
		Bodega:   10,
		Tienda1:  2,
		Tienda2:  0,
		Precio:   decimal.RequireFromString("259900"),
		Imagen:   "https://storage.example.com/images/x_foto.png",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateZapatos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateZapatos_SinItems(t *testing.T) {
	storage := &fakeStorage{}
	uc := bodega.NewUseCase(newFakeZapatoRepo(), storage)

	_, err := uc.CreateZapatos(context.Background(), nil, imagenValida())

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Datos de zapatos no recibidos", ve.Msg)
	assert.Zero(t, storage.subidas)
}

func TestCreateZapatos_SinImagen(t *testing.T) {
	storage := &fakeStorage{}
	uc := bodega.NewUseCase(newFakeZapatoRepo(), storage)

	_, err := uc.CreateZapatos(context.Background(), []dto.CreateZapatoInput{itemValido()}, dto.Imagen{})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Se requiere una imagen para el zapato", ve.Msg)
	assert.Zero(t, storage.subidas)
}

func TestCreateZapatos_CamposFaltantes(t *testing.T) {
	storage := &fakeStorage{}
	uc := bodega.NewUseCase(newFakeZapatoRepo(), storage)

	item := itemValido()
	item.Marca = ""
	item.Precio = nil
	_, err := uc.CreateZapatos(context.Background(), []dto.CreateZapatoInput{item}, imagenValida())

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Msg, "Todos los campos son obligatorios")
	assert.Contains(t, ve.Msg, "marca")
	assert.Contains(t, ve.Msg, "precio")
	assert.Zero(t, storage.subidas, "no debe subirse la imagen si el lote es inválido")
}

func TestCreateZapatos_LoteCompartelaImagen(t *testing.T) {
	repo := newFakeZapatoRepo()
	storage := &fakeStorage{}
	uc := bodega.NewUseCase(repo, storage)

	otro := itemValido()
	otro.Talla = "43"
	creados, err := uc.CreateZapatos(context.Background(), []dto.CreateZapatoInput{itemValido(), otro}, imagenValida())
	require.NoError(t, err)
	require.Len(t, creados, 2)

	assert.Equal(t, 1, storage.subidas, "la imagen del lote se sube una sola vez")
	assert.Equal(t, creados[0].Imagen, creados[1].Imagen, "todos los ítems comparten la URL")
	assert.NotEmpty(t, creados[0].Imagen)
	assert.NotZero(t, creados[0].CID)
	assert.NotEqual(t, creados[0].CID, creados[1].CID)

	require.Len(t, storage.nombres, 1)
	assert.True(t, strings.HasPrefix(storage.nombres[0], "images/"))
	assert.True(t, strings.HasSuffix(storage.nombres[0], "_foto.png"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestPorTipo_TipoObligatorio(t *testing.T) {
	uc := bodega.NewUseCase(newFakeZapatoRepo(), &fakeStorage{})

	_, err := uc.PorTipo(context.Background(), "")

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "El tipo de zapato es obligatorio", ve.Msg)
}

func TestBuscar_SinFiltros(t *testing.T) {
	uc := bodega.NewUseCase(newFakeZapatoRepo(), &fakeStorage{})

	_, err := uc.Buscar(context.Background(), repository.ZapatoFiltro{})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Se requiere al menos un parametro de busqueda", ve.Msg)
}

func TestBuscar_FiltraPorMarca(t *testing.T) {
	uc := bodega.NewUseCase(newFakeZapatoRepo(zapatoDePrueba()), &fakeStorage{})

	zapatos, err := uc.Buscar(context.Background(), repository.ZapatoFiltro{Marca: "nik"})
	require.NoError(t, err)
	require.Len(t, zapatos, 1)
	assert.Equal(t, "Nike", zapatos[0].Marca)
}

func TestPorCID_NoEncontrado(t *testing.T) {
	uc := bodega.NewUseCase(newFakeZapatoRepo(), &fakeStorage{})

	_, err := uc.PorCID(context.Background(), 99)
	assert.True(t, errors.Is(err, domain.ErrZapatoNoEncontrado))
}

func TestPorCID_DevuelveTodosLosCampos(t *testing.T) {
	uc := bodega.NewUseCase(newFakeZapatoRepo(zapatoDePrueba()), &fakeStorage{})

	z, err := uc.PorCID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "ZAP-001", z.Codigo)
	assert.Equal(t, "https://storage.example.com/images/x_foto.png", z.Imagen)
	assert.True(t, z.Precio.Equal(decimal.RequireFromString("259900")))
}

func TestActualizarPorCID_PatchVacio(t *testing.T) {
	uc := bodega.NewUseCase(newFakeZapatoRepo(zapatoDePrueba()), &fakeStorage{})

	_, err := uc.ActualizarPorCID(context.Background(), 5, repository.ZapatoPatch{})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "No hay datos para actualizar", ve.Msg)
}

func TestActualizarPorCID_NoEncontrado(t *testing.T) {
	uc := bodega.NewUseCase(newFakeZapatoRepo(), &fakeStorage{})

	color := "rojo"
	_, err := uc.ActualizarPorCID(context.Background(), 99, repository.ZapatoPatch{Color: &color})
	assert.True(t, errors.Is(err, domain.ErrZapatoNoEncontrado))
}

func TestActualizarPorCID_AplicaElPatch(t *testing.T) {
	uc := bodega.NewUseCase(newFakeZapatoRepo(zapatoDePrueba()), &fakeStorage{})

	color := "rojo"
	z, err := uc.ActualizarPorCID(context.Background(), 5, repository.ZapatoPatch{Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "rojo", z.Color)
	assert.Equal(t, "Nike", z.Marca, "los campos no tocados se conservan")
}

// ──────────────────────────────────────────────────────────────────────────────
// Etiquetas
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerarEtiqueta_CIDInexistenteNoTocaElServicio(t *testing.T) {
	renderer := &fakeRenderer{png: []byte("png")}
	uc := bodega.NewEtiquetaUseCase(newFakeZapatoRepo(), renderer)

	_, err := uc.Generar(context.Background(), 99)
	assert.True(t, errors.Is(err, domain.ErrZapatoNoEncontrado))
	assert.Zero(t, renderer.llamadas, "no debe contactarse al servicio si el zapato no existe")
}

func TestGenerarEtiqueta_EnviaZPLDelZapato(t *testing.T) {
	renderer := &fakeRenderer{png: []byte("png-bytes")}
	uc := bodega.NewEtiquetaUseCase(newFakeZapatoRepo(zapatoDePrueba()), renderer)

	png, err := uc.Generar(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
	assert.Equal(t, 1, renderer.llamadas)
	assert.Contains(t, renderer.ultimo, "Nike")
	assert.Contains(t, renderer.ultimo, "^XA")
}

func TestGenerarEtiqueta_PropagaFalloDelServicio(t *testing.T) {
	renderer := &fakeRenderer{err: domain.ErrServicioEtiquetas}
	uc := bodega.NewEtiquetaUseCase(newFakeZapatoRepo(zapatoDePrueba()), renderer)

	_, err := uc.Generar(context.Background(), 5)
	assert.True(t, errors.Is(err, domain.ErrServicioEtiquetas))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

type fakeReporteGen struct {
	llamadas int
	tipo     string
}

func (f *fakeReporteGen) GenerarReporte(_ context.Context, tipo string, _ []entity.ZapatoGrupo) ([]byte, error) {
	f.llamadas++
	f.tipo = tipo
	return []byte("%PDF-1.7 fake"), nil
}

func TestReportePorTipo_TipoObligatorio(t *testing.T) {
	gen := &fakeReporteGen{}
	uc := bodega.NewReporteUseCase(newFakeZapatoRepo(), gen)

	_, err := uc.PorTipo(context.Background(), "")

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "El tipo de zapato es obligatorio", ve.Msg)
	assert.Zero(t, gen.llamadas)
}

func TestReportePorTipo_GeneraElPDF(t *testing.T) {
	repo := newFakeZapatoRepo()
	dos := 2
	repo.grupos = []entity.ZapatoGrupo{{
		Marca: "Nike", Modelo: "Air Max", Material: "cuero", Color: "negro",
		TallasDisponibles: []entity.TallaDisponible{{Talla: "42", Bodega: 10, Tienda1: &dos}},
	}}
	gen := &fakeReporteGen{}
	uc := bodega.NewReporteUseCase(repo, gen)

	pdf, err := uc.PorTipo(context.Background(), "deportivo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Equal(t, "deportivo", gen.tipo)
}
