package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/pasteleria-pos/internal/infrastructure/mockbackend"
	"github.com/jhoicas/pasteleria-pos/internal/interfaces/httpapi"
	"github.com/jhoicas/pasteleria-pos/pkg/config"
	"github.com/jhoicas/pasteleria-pos/pkg/logger"
)

// mockserver publica el backend de demostración por HTTP, para correr
// el POS en modo http contra un endpoint real.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("error cargando configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	backend := mockbackend.New(mockbackend.Config{
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		JWTExpMins: cfg.JWT.Expiration,
	})
	app := httpapi.NewApp(backend, log)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("mockserver escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("el servidor no pudo arrancar")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando mockserver")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error en el apagado")
	}
}
