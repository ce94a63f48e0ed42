package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zapateria/bodega-api/internal/application/auth"
	"github.com/zapateria/bodega-api/internal/application/bodega"
	"github.com/zapateria/bodega-api/internal/application/usuarios"
	"github.com/zapateria/bodega-api/internal/domain/entity"
	"github.com/zapateria/bodega-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	UsuariosUC *usuarios.UseCase
	BodegaUC   *bodega.UseCase
	EtiquetaUC *bodega.EtiquetaUseCase
	ReporteUC  *bodega.ReporteUseCase
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Usuarios: registro y login públicos; administración solo para admins.
	usuariosGroup := api.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.AuthUC, deps.UsuariosUC, deps.Log)
	usuariosGroup.Post("/register", usuarioHandler.Register)
	usuariosGroup.Post("/login", usuarioHandler.Login)

	soloAdmin := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin)}
	usuariosGroup.Get("/all-users", append(soloAdmin, usuarioHandler.AllUsers)...)
	usuariosGroup.Post("/assign-role", append(soloAdmin, usuarioHandler.AssignRole)...)
	usuariosGroup.Post("/delete-user", append(soloAdmin, usuarioHandler.DeleteUser)...)

	// Bodega: operaciones de inventario.
	bodegaGroup := api.Group("/bodega")
	bodegaHandler := NewBodegaHandler(deps.BodegaUC, deps.EtiquetaUC, deps.ReporteUC, deps.Log)
	bodegaGroup.Post("/create-zapatos", bodegaHandler.CreateZapatos)
	bodegaGroup.Post("/zapatos-por-tipo", bodegaHandler.ZapatosPorTipo)
	bodegaGroup.Post("/get-zapato-by-funcion", bodegaHandler.GetZapatoByFuncion)
	bodegaGroup.Post("/getZapatoCID", bodegaHandler.GetZapatoCID)
	bodegaGroup.Post("/update-zapato", bodegaHandler.UpdateZapato)
	bodegaGroup.Post("/generar-etiqueta", bodegaHandler.GenerarEtiqueta)
	bodegaGroup.Post("/reporte-inventario", bodegaHandler.ReporteInventario)
}
