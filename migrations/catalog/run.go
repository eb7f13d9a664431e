package main

import (
	"embed"

	"github.com/Lilith-exe/LilysCloset/pkg/config"
	"github.com/Lilith-exe/LilysCloset/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, MigrationsFS); err != nil {
		panic(err)
	}
}
