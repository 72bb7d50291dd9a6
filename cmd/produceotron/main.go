package main

import (
	"fmt"
	"os"
	"path/filepath"

	"produceotron/internal/cli"
	"produceotron/internal/db"
	"produceotron/internal/intelligence"
	"produceotron/internal/llm"
	"produceotron/internal/rates"
	"produceotron/internal/repository"
	"produceotron/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.produceotron/produceotron.db
	dbPath := os.Getenv("PRODUCEOTRON_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".produceotron", "produceotron.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	notesStore := repository.NewSQLiteNotesStore(database)

	app := &cli.App{
		Architect: service.NewArchitectService(planRepo, nil),
		Notes:     service.NewNotesService(notesStore),
		Rates:     rates.NewFetcher(rates.NewHTTPClient(rates.LoadConfig())),
	}

	// Wire the drafting engine only when enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		app.Drafts = intelligence.NewDraftService(llm.NewOllamaClient(llmCfg, observer))
	}

	return cli.NewRootCmd(app).Execute()
}
