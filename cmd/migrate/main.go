// Comando migrate: aplica o revierte el esquema.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down 1
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/Axioma-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Axioma-api/pkg/config"
	"github.com/jhoicas/Axioma-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: migrate up|down [pasos]")
		os.Exit(2)
	}
	direction := os.Args[1]
	steps := 0
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 0 {
			fmt.Fprintf(os.Stderr, "pasos inválidos: %q\n", os.Args[2])
			os.Exit(2)
		}
		steps = n
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})

	if err := postgres.Migrate(cfg.DB.ConnectionString(), direction, steps); err != nil {
		log.Fatal().Err(err).Str("direction", direction).Msg("migración fallida")
	}
	log.Info().Str("direction", direction).Int("steps", steps).Msg("migración aplicada")
}
