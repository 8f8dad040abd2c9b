// estoque es el módulo de estoque interactivo: mantiene items (productos y
// materias primas) con su historial de movimientos, persistidos en dos
// archivos de texto planos que se recargan al arrancar.
//
// Uso: go run ./cmd/estoque [-seed]
// Con -seed agrega un inventario de demostración, guarda y termina.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tu-usuario/modulo-estoque/internal/application/usecase"
	"github.com/tu-usuario/modulo-estoque/internal/infrastructure/textfile"
	"github.com/tu-usuario/modulo-estoque/internal/interfaces/cli"
	"github.com/tu-usuario/modulo-estoque/pkg/config"
	"github.com/tu-usuario/modulo-estoque/pkg/logger"
)

func main() {
	seed := flag.Bool("seed", false, "poblar el estoque con datos de demostración y salir")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	repo := textfile.NewRepository(cfg.Storage.ItemsFile, cfg.Storage.MovementsFile, log)
	uc, err := usecase.NewInventoryUseCase(repo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estoque")
	}

	if *seed {
		if err := seedDemo(uc); err != nil {
			log.Fatal().Err(err).Msg("seed de demostración")
		}
		fmt.Println("Itens adicionados e dados salvos com sucesso.")
		return
	}

	menu := cli.NewMenu(uc, log, os.Stdin, os.Stdout)
	if err := menu.Run(); err != nil {
		log.Fatal().Err(err).Msg("menú interactivo")
	}
}

// seedDemo agrega un inventario fijo de demostración y lo guarda.
func seedDemo(uc *usecase.InventoryUseCase) error {
	uc.CreateProduct("ParafusoAuto", "Parafuso automatico M4", 200,
		`http://google.com/search?q="ParafusoAuto"`, "FerragensAuto")
	uc.CreateRawMaterial("MadeiraAuto", "Madeira tratada", 50,
		"http://example.com/madeira", "FornecedorAuto")
	return uc.Save()
}
