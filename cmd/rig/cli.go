package main

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/rig/internal/config"
	"github.com/hpungsan/rig/internal/errors"
	"github.com/hpungsan/rig/internal/filter"
	"github.com/hpungsan/rig/internal/ops"
	"github.com/hpungsan/rig/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(session *ops.Session, cfg *config.Config) *cli.App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	app := &cli.App{
		Name:    "rig",
		Usage:   "PC build compatibility assistant",
		Version: Version,
		Commands: []*cli.Command{
			catalogCmd(session),
			optionsCmd(session),
			selectCmd(session),
			statusCmd(session),
			summaryCmd(session),
			clearCmd(session),
			webCmd(session, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// catalogCmd creates the catalog command.
func catalogCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Show how many parts each category holds",
		Action: func(c *cli.Context) error {
			return outputJSON(session.Catalog())
		},
	}
}

// optionsCmd creates the options command.
func optionsCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:      "options",
		Usage:     "List the parts of a category, classified against the current build",
		ArgsUsage: "<category>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Match name, brand or model"},
			&cli.StringFlag{Name: "brand", Aliases: []string{"b"}, Usage: "Exact brand"},
			&cli.IntFlag{Name: "min-price", Usage: "Minimum price (inclusive)"},
			&cli.IntFlag{Name: "max-price", Usage: "Maximum price (inclusive); 0 means the list maximum"},
			&cli.StringFlag{Name: "features", Aliases: []string{"f"}, Usage: "Comma-separated feature tags"},
			&cli.BoolFlag{Name: "facets", Usage: "Include brand, price and feature facets"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("category is required"))
			}

			minPrice, maxPrice := c.Int("min-price"), c.Int("max-price")
			if minPrice < 0 || maxPrice < 0 {
				return outputError(errors.NewInvalidRequest("prices must not be negative"))
			}

			output, err := session.Options(ops.OptionsInput{
				Category: c.Args().First(),
				Criteria: filter.Criteria{
					Search:   c.String("search"),
					Brand:    c.String("brand"),
					MinPrice: minPrice,
					MaxPrice: maxPrice,
					Features: parseList(c.String("features")),
				},
				IncludeFacets: c.Bool("facets"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// selectCmd creates the select command.
func selectCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:      "select",
		Usage:     "Put a part into its slot; later slots are cleared",
		ArgsUsage: "<category> <id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("category and id are required"))
			}

			output, err := session.Select(c.Context, ops.SelectInput{
				Category: c.Args().Get(0),
				ID:       c.Args().Get(1),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// statusCmd creates the status command.
func statusCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the wizard steps, the selected parts and the total",
		Action: func(c *cli.Context) error {
			return outputJSON(session.Status(c.Context))
		},
	}
}

// summaryCmd creates the summary command.
func summaryCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Print the build as a markdown table",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Output JSON instead of markdown"},
		},
		Action: func(c *cli.Context) error {
			output := session.Summary()
			if c.Bool("json") {
				return outputJSON(output)
			}
			_, err := fmt.Fprint(os.Stdout, output.Markdown)
			return err
		},
	}
}

// clearCmd creates the clear command.
func clearCmd(session *ops.Session) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Empty every slot of the build",
		Action: func(c *cli.Context) error {
			return outputJSON(session.Clear(c.Context))
		},
	}
}

// webCmd creates the web command.
func webCmd(session *ops.Session, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the build wizard over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: cfg.WebBind, Usage: "Listen address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: cfg.WebPort, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			port := c.Int("port")
			if port < 0 || port > 65535 {
				return outputError(errors.NewInvalidRequest(fmt.Sprintf("port out of range: %d", port)))
			}

			srv, err := web.NewServer(session, Version, c.String("bind"), port)
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
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
	var rigErr *errors.RigError
	if stderrors.As(err, &rigErr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", rigErr.Code, rigErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// parseList splits a comma-separated string into trimmed, non-empty items.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			items = append(items, t)
		}
	}
	return items
}
