package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/rig/internal/catalog"
	"github.com/hpungsan/rig/internal/config"
	"github.com/hpungsan/rig/internal/db"
	"github.com/hpungsan/rig/internal/mcp"
	"github.com/hpungsan/rig/internal/obs"
	"github.com/hpungsan/rig/internal/ops"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"catalog": true, "options": true, "select": true,
	"status": true, "summary": true, "clear": true,
	"web":  true,
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
   ____  ___ ____
  |  _ \|_ _/ ___|
  | |_) || | |  _
  |  _ < | | |_| |
  |_| \_\___\____|

  PC build compatibility assistant

  Usage: rig <command> [options]
         rig --help

  MCP server mode requires piped input.`)
}

// catalogSource picks the HTTP source when a catalog URL is configured.
func catalogSource(cfg *config.Config, baseDir string) catalog.Source {
	if cfg.CatalogURL != "" {
		return catalog.HTTPSource{BaseURL: cfg.CatalogURL}
	}
	return catalog.DirSource{Dir: cfg.ResolveCatalogDir(baseDir)}
}

// warnUnknownDisabled logs disabled tool and type names the server does not know.
func warnUnknownDisabled(cfg *config.Config) {
	for _, name := range mcp.ValidateDisabledTools(cfg.DisabledTools) {
		obs.Logger.Warn("unknown tool in disabled_tools", "tool", name)
	}
	for _, name := range mcp.ValidateDisabledTypes(cfg.DisabledTypes) {
		obs.Logger.Warn("unknown type in disabled_types", "type", name)
	}
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before catalog and DB init
	if isHelpOrVersion() {
		app := newCLIApp(nil, nil)
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

	baseDir := filepath.Join(homeDir, config.DirName)

	cwd, err := os.Getwd()
	if err != nil {
		cwd = baseDir
	}

	cfg, err := config.LoadWithRepo(baseDir, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := obs.Init(os.Stderr, cfg.LogLevel)

	database, err := db.Init(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()
	db.ConfigurePool(database, cfg)

	ctx := context.Background()

	cat, report := catalog.Load(ctx, catalogSource(cfg, baseDir), catalog.LoadOptions{
		Timeout: cfg.FetchTimeout(),
		Logger:  logger,
	})
	if report.Empty {
		logger.Warn("catalog is empty; every category will list no options")
	}

	session := ops.Open(ctx, cat, report, db.NewSnapshotStore(database), cfg)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(session, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'rig --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	warnUnknownDisabled(cfg)
	if err := mcp.Run(session, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
