package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hpungsan/tabstash/internal/config"
	"github.com/hpungsan/tabstash/internal/db"
	"github.com/hpungsan/tabstash/internal/enrich"
	"github.com/hpungsan/tabstash/internal/mcp"
	"github.com/hpungsan/tabstash/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"capture": true, "list": true, "open": true, "remove": true,
	"status": true, "pro": true, "export": true, "web": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   _        _        _            _
  | |_ __ _| |__ ___| |_ __ _ ___| |__
  | __/ _' | '_ \ __| __/ _' / __| '_ \
  | || (_| | |_) \__ \ || (_| \__ \ | | |
   \__\__,_|_.__/|___/\__\__,_|___/_| |_|

  Save browser tabs for later

  Usage: tabstash <command> [options]
         tabstash --help

  MCP server mode requires piped input.`)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before DB init (no DB needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil, nil, "")
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	baseDir := filepath.Join(homeDir, ".tabstash")

	database, err := db.Init(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "warning: unknown disabled tools in config: %v\n", unknown)
	}

	db.ConfigurePool(database, cfg)

	st := store.New(db.NewBackend(database), cfg.FreeTabLimit)
	client := enrich.NewClient(cfg.EnrichEndpoint, time.Duration(cfg.EnrichTimeoutSeconds)*time.Second)
	disp := enrich.NewDispatcher(client, st)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(st, disp, cfg, baseDir)
		runErr := app.Run(os.Args)
		disp.Close()
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'tabstash --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	mcpErr := mcp.Run(st, disp, cfg, baseDir, Version)
	disp.Close()
	if mcpErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", mcpErr)
		os.Exit(1)
	}
}
