// import_expenses carga gastos desde una planilla CSV (separador ';') al
// almacenamiento configurado, pasando por las mismas validaciones de la API.
//
// Uso: go run ./cmd/import_expenses [-latin1] [-dry-run] gastos.csv
//
// Con STORAGE_DRIVER=memory los datos no sobreviven al proceso: sirve solo
// para validar el archivo.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/tempero-api/internal/application/usecase"
	"github.com/jhoicas/tempero-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/tempero-api/internal/infrastructure/storage"
	"github.com/jhoicas/tempero-api/pkg/config"
	"github.com/jhoicas/tempero-api/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "forzar decodificación ISO-8859-1")
	dryRun := flag.Bool("dry-run", false, "solo validar, no guardar")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_expenses [-latin1] [-dry-run] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).WithComponent("import")

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := csvimport.Read(f, csvimport.Options{Latin1: *latin1})
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	if *dryRun {
		cfg.Storage.Driver = config.StorageMemory
	}
	if cfg.Storage.Driver == config.StorageMemory && !*dryRun {
		log.Warn().Msg("STORAGE_DRIVER=memory: los gastos se descartan al terminar")
	}

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer repos.Close()

	uc := usecase.NewExpenseUseCase(repos.Expenses, repos.Suppliers)
	imported, failed := 0, 0
	for _, row := range rows {
		if _, err := uc.Create(ctx, row.Expense); err != nil {
			failed++
			log.Error().Err(err).Int("line", row.Line).Str("description", row.Expense.Description).Msg("gasto rechazado")
			continue
		}
		imported++
	}

	log.Info().Int("imported", imported).Int("failed", failed).Str("storage", repos.Driver).Msg("importación terminada")
	if failed > 0 {
		repos.Close()
		os.Exit(1)
	}
}
