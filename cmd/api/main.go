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

	"github.com/jhoicas/kardex-captura/internal/application/capture"
	"github.com/jhoicas/kardex-captura/internal/infrastructure/csvfile"
	"github.com/jhoicas/kardex-captura/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/kardex-captura/internal/infrastructure/pdf"
	"github.com/jhoicas/kardex-captura/internal/infrastructure/xmlbatch"
	httpRouter "github.com/jhoicas/kardex-captura/internal/interfaces/http"
	"github.com/jhoicas/kardex-captura/pkg/config"
	"github.com/jhoicas/kardex-captura/pkg/logger"
)

// multipartOverhead margen sobre IMPORT_MAX_BYTES para cabeceras multipart.
const multipartOverhead = 64 << 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Dir).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := localstore.New(cfg.Storage.Dir, log.Component("localstore"))
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local")
	}

	captureUC, err := capture.NewUseCase(ctx, capture.Deps{
		Contexts: store,
		Queues:   store,
		Decoder:  csvfile.NewDecoder(cfg.Import.MaxBytes),
		Batches:  xmlbatch.NewBuilder(nil),
		Archive:  xmlbatch.NewArchive(cfg.Storage.SubmissionsDir),
		Reports:  infrapdf.NewMarotoSummaryReport(""),
		Logger:   log.Zerolog(),
	}, capture.Config{
		DefaultCurrency: cfg.Capture.DefaultCurrency,
		ClearOnSubmit:   cfg.Capture.ClearOnSubmit,
		PreviewTTL:      cfg.Import.PreviewTTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sesión de captura")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    int(cfg.Import.MaxBytes) + multipartOverhead,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el archivo)
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Kardex Captura API",
		}))
	} else {
		log.Debug().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Capture: captureUC,
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
