package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/tabstash/internal/config"
	"github.com/hpungsan/tabstash/internal/enrich"
	"github.com/hpungsan/tabstash/internal/errors"
	"github.com/hpungsan/tabstash/internal/ops"
	"github.com/hpungsan/tabstash/internal/store"
	"github.com/hpungsan/tabstash/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(st *store.Store, disp *enrich.Dispatcher, cfg *config.Config, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "tabstash",
		Usage:   "Save browser tabs for later",
		Version: Version,
		Commands: []*cli.Command{
			captureCmd(st, disp, cfg),
			listCmd(st),
			openCmd(st),
			removeCmd(st),
			statusCmd(st),
			proCmd(st),
			exportCmd(st, baseDir),
			webCmd(st, disp, cfg, baseDir),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// captureCmd creates the capture command.
func captureCmd(st *store.Store, disp *enrich.Dispatcher, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "capture",
		Usage:     "Save a tab by URL",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Raw page title (cleaned up per site)"},
			&cli.StringFlag{Name: "favicon", Usage: "Favicon URL reported by the page"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("url argument is required"))
			}

			output, err := ops.Capture(c.Context, st, disp, cfg, ops.CaptureInput{
				URL:     c.Args().First(),
				Title:   c.String("title"),
				Favicon: c.String("favicon"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List saved tabs, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum items to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Items to skip"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(c.Context, st, ops.ListInput{
				Limit:  c.Int("limit"),
				Offset: c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// openCmd creates the open command.
func openCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "open",
		Usage:     "Print a saved tab's URL and remove it from the stash",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("id argument is required"))
			}

			output, err := ops.Open(c.Context, st, ops.OpenInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// removeCmd creates the remove command.
func removeCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Remove a saved tab",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("id argument is required"))
			}

			output, err := ops.Remove(c.Context, st, ops.RemoveInput{ID: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// statusCmd creates the status command.
func statusCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show tab count and remaining free-tier capacity",
		Action: func(c *cli.Context) error {
			output, err := ops.Status(c.Context, st)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// proCmd creates the pro command.
func proCmd(st *store.Store) *cli.Command {
	return &cli.Command{
		Name:      "pro",
		Usage:     "Enable or disable Pro status (removes the free-tier tab limit)",
		ArgsUsage: "<on|off>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("argument must be \"on\" or \"off\""))
			}

			var enabled bool
			switch c.Args().First() {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return outputError(errors.NewInvalidRequest("argument must be \"on\" or \"off\""))
			}

			output, err := ops.SetPro(c.Context, st, ops.SetProInput{Enabled: enabled})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(st *store.Store, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export saved tabs to a Markdown file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: ~/.tabstash/exports/tabs-<timestamp>.md)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(c.Context, st, ops.ExportInput{
				Path:    c.String("path"),
				BaseDir: baseDir,
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// webCmd creates the web command.
func webCmd(st *store.Store, disp *enrich.Dispatcher, cfg *config.Config, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Start the local web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Address to bind to"},
			&cli.IntFlag{Name: "port", Value: 8700, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(st, disp, cfg, baseDir, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if tabErr, ok := err.(*errors.TabError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", tabErr.Code, tabErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
