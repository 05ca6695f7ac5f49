package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"glim/internal/circle"
	"glim/internal/cli"
	"glim/internal/config"
	"glim/internal/journal/service"
	"glim/internal/logs"
	"glim/internal/tui"
)

func main() {
	// Parse CLI flags
	journalFlag := flag.String("journal", "", "Journal directory")
	flag.StringVar(journalFlag, "j", "", "Journal directory (shorthand)")
	viewFlag := flag.String("view", "", "Initial view: feed, circle, onboarding")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{JournalDir: *journalFlag})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Ensure the journal directory exists
	if err := cfg.EnsureJournalDir(); err != nil {
		log.Fatalf("Failed to create journal directory: %v", err)
	}

	// Reinitialize logger into the journal directory
	if err := logs.Initialize(cfg.JournalDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}

	// Load the entry service
	entrySvc, err := service.NewEntryService(cfg.JournalDir)
	if err != nil {
		log.Fatalf("Failed to load journal: %v", err)
	}

	// Check for CLI subcommands
	args := flag.Args()
	if len(args) > 0 {
		exitCode := cli.Run(args, entrySvc, cfg.DateFormat)
		os.Exit(exitCode)
	}

	// Apply --view flag override
	if *viewFlag != "" {
		cfg.DefaultView = *viewFlag
	}

	circleSvc := circle.NewLocalService(cfg.JournalDir)

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")
	appModel := tui.NewAppModel(cfg, entrySvc, circleSvc)
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
