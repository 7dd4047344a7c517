package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/cli/browser"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/sitemarks/internal"
	"github.com/starford/sitemarks/internal/apperr"
	"github.com/starford/sitemarks/internal/bookmarks"
	"github.com/starford/sitemarks/internal/render"
	pkgconfig "github.com/starford/sitemarks/pkg/config"
)

var version = "dev"

func loadOptions(cmd *cli.Command) ([]internal.Option, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	found, err := pkgconfig.LoadOptional(configPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if !found && cmd.IsSet("config") {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	return []internal.Option{
		internal.WithConfig(cfg),
		internal.WithVersion(version),
	}, nil
}

// cliOptions sends logs to stderr so command output stays clean.
func cliOptions(cmd *cli.Command) ([]internal.Option, error) {
	opts, err := loadOptions(cmd)
	if err != nil {
		return nil, err
	}
	return append(opts, internal.WithLogOutput(os.Stderr)), nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	opts, err := cliOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunMCP(ctx, opts...)
}

func list(_ context.Context, cmd *cli.Command) error {
	opts, err := cliOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunCommand(opts, func(ctl *bookmarks.Controller) error {
		_, err := fmt.Fprintln(cmd.Root().Writer, render.Text(ctl.Bookmarks()))
		return err
	})
}

func add(ctx context.Context, cmd *cli.Command) error {
	opts, err := cliOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunCommand(opts, func(ctl *bookmarks.Controller) error {
		form := bookmarks.NewForm(cmd.String("name"), cmd.String("url"))
		res, err := ctl.Submit(ctx, form)
		if err != nil {
			return err
		}
		if res.Notice != nil {
			w := cmd.Root().ErrWriter
			fmt.Fprintln(w, res.Notice.Title)
			for _, line := range res.Notice.Lines {
				fmt.Fprintf(w, "  -> %s\n", line)
			}
			return errors.New("bookmark rejected")
		}
		_, err = fmt.Fprintf(cmd.Root().Writer, "added %s at position %d\n", res.Bookmark.SiteName, res.Index+1)
		return err
	})
}

func positionArg(cmd *cli.Command) (int, error) {
	raw := cmd.Args().First()
	if raw == "" {
		return 0, errors.New("position argument is required")
	}
	pos, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("position %q is not a number", raw)
	}
	return pos, nil
}

func positionError(pos int, err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return fmt.Errorf("no bookmark at position %d", pos)
	}
	return err
}

func remove(ctx context.Context, cmd *cli.Command) error {
	pos, err := positionArg(cmd)
	if err != nil {
		return err
	}
	opts, err := cliOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunCommand(opts, func(ctl *bookmarks.Controller) error {
		removed, err := ctl.Delete(ctx, pos-1)
		if err != nil {
			return positionError(pos, err)
		}
		_, err = fmt.Fprintf(cmd.Root().Writer, "deleted %s\n", removed.SiteName)
		return err
	})
}

func open(ctx context.Context, cmd *cli.Command) error {
	pos, err := positionArg(cmd)
	if err != nil {
		return err
	}
	opts, err := cliOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunCommand(opts, func(ctl *bookmarks.Controller) error {
		target, err := ctl.Visit(ctx, pos-1)
		if err != nil {
			return positionError(pos, err)
		}
		if err := browser.OpenURL(target); err != nil {
			return fmt.Errorf("open %s: %w", target, err)
		}
		return nil
	})
}

func main() {
	cmd := &cli.Command{
		Name:    "sitemarks",
		Usage:   "Bookmark manager with a web page, JSON API, MCP tools and CLI",
		Version: version,
		Action:  serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the bookmark page, API and event stream (default)",
				Action: serve,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the bookmark tools over MCP stdio",
				Action: serveMCP,
			},
			{
				Name:   "list",
				Usage:  "Print the bookmark table",
				Action: list,
			},
			{
				Name:  "add",
				Usage: "Add a bookmark",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Site name, e.g. Google", Required: true},
					&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "Site URL, e.g. google.com", Required: true},
				},
				Action: add,
			},
			{
				Name:      "delete",
				Usage:     "Delete the bookmark at a 1-based position",
				ArgsUsage: "<position>",
				Action:    remove,
			},
			{
				Name:      "open",
				Usage:     "Open the bookmark at a 1-based position in the browser",
				ArgsUsage: "<position>",
				Action:    open,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
