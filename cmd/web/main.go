package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/invorya/inventory-web/internal/application/services"
	appsession "github.com/invorya/inventory-web/internal/application/session"
	"github.com/invorya/inventory-web/internal/infrastructure/api"
	infrasession "github.com/invorya/inventory-web/internal/infrastructure/session"
	"github.com/invorya/inventory-web/internal/interfaces/web"
	"github.com/invorya/inventory-web/pkg/config"
	"github.com/invorya/inventory-web/pkg/jwt"
	"github.com/invorya/inventory-web/pkg/logger"
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
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	sessionPath := cfg.Session.File
	if sessionPath == "" {
		sessionPath, err = infrasession.DefaultPath()
		if err != nil {
			log.Fatal().Err(err).Msg("resolver ruta de sesión")
		}
	}
	tokens, err := infrasession.NewStore(sessionPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de sesión")
	}

	// Diagnóstico: si hay token persistido, registrar su expiración declarada.
	if token, ok := tokens.Token(); ok {
		if claims, err := jwt.Inspect(token); err == nil && claims.ExpiresAt != nil {
			log.Info().Time("expires_at", claims.ExpiresAt.Time).Msg("token persistido encontrado")
		}
	}

	toasts := web.NewToasts()
	state := appsession.NewState()
	state.Subscribe(func(snap appsession.Snapshot) {
		log.Info().Bool("authenticated", snap.Authenticated).Str("role", snap.Role).
			Msg("transición de sesión")
	})

	client := api.New(api.Config{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		Tokens:     tokens,
		Notifier:   toasts,
		OnAuthLost: state,
		Log:        log,
	})

	authSvc := services.NewAuthService(client, tokens)
	productSvc := services.NewProductService(client)
	userSvc := services.NewUserService(client)
	reportSvc := services.NewReportService(client)

	// Rehidratación opcional de la sesión persistida (SESSION_REHYDRATE).
	_, hasToken := tokens.Token()
	if appsession.Rehydrate(context.Background(), cfg.Session.Rehydrate, hasToken, authSvc.Me, state) {
		log.Info().Str("role", state.Current().Role).Msg("sesión recuperada desde token persistido")
	}

	renderer, err := web.NewRenderer(toasts)
	if err != nil {
		log.Fatal().Err(err).Msg("compilar plantillas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	web.Router(app, web.RouterDeps{
		Renderer: renderer,
		Toasts:   toasts,
		State:    state,
		Auth:     authSvc,
		Products: productSvc,
		Users:    userSvc,
		Reports:  reportSvc,
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
