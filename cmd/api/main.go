package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/zapateria/bodega-api/internal/application/auth"
	appbodega "github.com/zapateria/bodega-api/internal/application/bodega"
	"github.com/zapateria/bodega-api/internal/application/usuarios"
	"github.com/zapateria/bodega-api/internal/infrastructure/labelary"
	infrapdf "github.com/zapateria/bodega-api/internal/infrastructure/pdf"
	"github.com/zapateria/bodega-api/internal/infrastructure/postgres"
	infrastorage "github.com/zapateria/bodega-api/internal/infrastructure/storage"
	httpRouter "github.com/zapateria/bodega-api/internal/interfaces/http"
	"github.com/zapateria/bodega-api/pkg/config"
	"github.com/zapateria/bodega-api/pkg/logger"
	"github.com/zapateria/bodega-api/pkg/validate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	bucket, err := infrastorage.NewGCSBucket(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("bucket de imágenes")
	}
	defer bucket.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	zapatoRepo := postgres.NewZapatoRepository(pool)

	va := validate.New()
	authUC := auth.NewUseCase(usuarioRepo, va, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	})
	usuariosUC := usuarios.NewUseCase(usuarioRepo)
	bodegaUC := appbodega.NewUseCase(zapatoRepo, bucket)
	etiquetaUC := appbodega.NewEtiquetaUseCase(zapatoRepo, labelary.NewClient(cfg.Etiqueta))
	reporteUC := appbodega.NewReporteUseCase(zapatoRepo, infrapdf.NewMarotoReporteGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UsuariosUC: usuariosUC,
		BodegaUC:   bodegaUC,
		EtiquetaUC: etiquetaUC,
		ReporteUC:  reporteUC,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
