// Package main is the entry point for the todo TUI application.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/logging"
	"github.com/hy4ri/todo-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `todo-tui - Terminal client for a /api/todos task list

USAGE:
    todo-tui [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --server URL    Use this server instead of the configured one

CONFIGURATION:
    Config file: ~/.config/todo-tui/config.yaml
    Environment: TODO_API_URL overrides server.base_url

KEYBINDINGS:
    Form:
        Enter       Submit task
        Tab/Esc     Switch to the task table

    Table:
        j/k         Move down/up
        gg/G        Go to top/bottom
        dd/Delete   Remove task
        yy          Copy task text
        Tab/a/i     Switch to the form

    Other:
        r           Refresh
        ?           Show help
        q           Quit
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		serverURL   string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&serverURL, "server", "", "Server base URL")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("todo-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(serverURL)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(config.Template), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(serverURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverURL != "" {
		cfg.Server.BaseURL = serverURL
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --server: %w", err)
		}
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	logger, closer, err := logging.OpenFile(logPath, level)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "version", version, "server", cfg.Server.BaseURL)

	client := api.NewClient(cfg.Server.BaseURL, cfg.Server.RequestTimeout)
	app := tui.NewApp(ctx, client, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("exiting")
	return nil
}
