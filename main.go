package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"focusdeck/internal/config"
	"focusdeck/internal/eventbus"
	"focusdeck/internal/planner"
	"focusdeck/internal/selection"
	"focusdeck/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the planner config file")
	flag.StringVar(&configPath, "c", "", "Path to the planner config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("focusdeck.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	// Build the catalog store and selection service
	itemStore := planner.NewMemoryItemStore()
	itemStore.SetItems(cfg.Catalog().Items)

	selectionSvc := selection.NewService(bus)
	board := planner.NewBoard(itemStore, selectionSvc)

	// Create UI model
	uiModel := ui.NewModel(cfg, configSvc, board, selectionSvc, bus)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventSelectionChanged, forward)
	bus.Subscribe(eventbus.EventSelectionCleared, forward)
	bus.Subscribe(eventbus.EventAllSelected, forward)
	bus.Subscribe(eventbus.EventConfigSaved, forward)
	bus.Subscribe(eventbus.EventError, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}

// loadConfig loads the config from the given path, the default location,
// or falls back to the built-in catalog
func loadConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			fmt.Printf("Error loading config %s: %v\n", path, err)
			os.Exit(1)
		}
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
