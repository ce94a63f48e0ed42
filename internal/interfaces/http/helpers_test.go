package http_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zapateria/bodega-api/internal/application/auth"
	appbodega "github.com/zapateria/bodega-api/internal/application/bodega"
	"github.com/zapateria/bodega-api/internal/application/usuarios"
	"github.com/zapateria/bodega-api/internal/domain/entity"
	"github.com/zapateria/bodega-api/internal/domain/repository"
	apphttp "github.com/zapateria/bodega-api/internal/interfaces/http"
	pkgjwt "github.com/zapateria/bodega-api/pkg/jwt"
	"github.com/zapateria/bodega-api/pkg/logger"
	"github.com/zapateria/bodega-api/pkg/validate"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: fakes en memoria + aplicación Fiber completa
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "bodega-api-test"
	testExpDays   = 7
)

// fakeUsuarioRepo repositorio de usuarios en memoria.
type fakeUsuarioRepo struct {
	porUsername map[string]*entity.Usuario
	nextUID     int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porUsername: make(map[string]*entity.Usuario)}
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	f.nextUID++
	u.UID = f.nextUID
	copia := *u
	f.porUsername[u.Username] = &copia
	return nil
}

func (f *fakeUsuarioRepo) FindByUsername(_ context.Context, username string) (*entity.Usuario, error) {
	u, ok := f.porUsername[username]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (f *fakeUsuarioRepo) FindByUID(_ context.Context, uid int64) (*entity.Usuario, error) {
	for _, u := range f.porUsername {
		if u.UID == uid {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) List(_ context.Context) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.porUsername {
		copia := *u
		copia.PasswordHash = ""
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakeUsuarioRepo) AssignRole(_ context.Context, uid int64, role entity.Role) (*entity.Usuario, error) {
	for _, u := range f.porUsername {
		if u.UID == uid {
			u.RoleID = role
			copia := *u
			copia.PasswordHash = ""
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Delete(_ context.Context, uid int64) (*entity.Usuario, error) {
	for username, u := range f.porUsername {
		if u.UID == uid {
			delete(f.porUsername, username)
			copia := *u
			copia.PasswordHash = ""
			return &copia, nil
		}
	}
	return nil, nil
}

// fakeZapatoRepo repositorio de zapatos en memoria.
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

// fakeStorage sube a ninguna parte y devuelve una URL determinística.
type fakeStorage struct {
	subidas int
}

func (f *fakeStorage) Upload(_ context.Context, name, _ string, _ []byte) (string, error) {
	f.subidas++
	return "https://storage.example.com/" + name, nil
}

// fakeRenderer devuelve bytes fijos o un error preconfigurado.
type fakeRenderer struct {
	llamadas int
	png      []byte
	err      error
}

func (f *fakeRenderer) Render(_ context.Context, _ string) ([]byte, error) {
	f.llamadas++
	if f.err != nil {
		return nil, f.err
	}
	return f.png, nil
}

// fakeReporteGen devuelve un PDF de mentira.
type fakeReporteGen struct{}

func (f *fakeReporteGen) GenerarReporte(_ context.Context, _ string, _ []entity.ZapatoGrupo) ([]byte, error) {
	return []byte("%PDF-1.7 fake"), nil
}

// testDeps fakes compartidos por una aplicación de test.
type testDeps struct {
	usuarioRepo *fakeUsuarioRepo
	zapatoRepo  *fakeZapatoRepo
	storage     *fakeStorage
	renderer    *fakeRenderer
}

// buildApp construye la aplicación Fiber completa con el router real y
// adaptadores en memoria.
func buildApp(t *testing.T, zapatos ...*entity.Zapato) (*fiber.App, *testDeps) {
	t.Helper()

	deps := &testDeps{
		usuarioRepo: newFakeUsuarioRepo(),
		zapatoRepo:  newFakeZapatoRepo(zapatos...),
		storage:     &fakeStorage{},
		renderer:    &fakeRenderer{png: []byte("png-bytes")},
	}

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	authUC := auth.NewUseCase(deps.usuarioRepo, validate.New(), auth.JWTConfig{
		Secret:  testJWTSecret,
		ExpDays: testExpDays,
		Issuer:  testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		UsuariosUC: usuarios.NewUseCase(deps.usuarioRepo),
		BodegaUC:   appbodega.NewUseCase(deps.zapatoRepo, deps.storage),
		EtiquetaUC: appbodega.NewEtiquetaUseCase(deps.zapatoRepo, deps.renderer),
		ReporteUC:  appbodega.NewReporteUseCase(deps.zapatoRepo, &fakeReporteGen{}),
		JWTSecret:  testJWTSecret,
		Log:        log,
	})
	return app, deps
}

// tokenForRole genera un Bearer token con el rol indicado.
func tokenForRole(t *testing.T, role entity.Role) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, 1, "usuario_test", int(role), testIssuer, testExpDays)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
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
