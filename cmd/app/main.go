package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/nexus/internal"
	"github.com/starford/nexus/internal/dot"
	pkgconfig "github.com/starford/nexus/pkg/config"
)

var version = "dev"

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func singleArg(cmd *cli.Command, name string) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("%s: expected exactly one argument <%s>", cmd.Name, name)
	}
	return cmd.Args().First(), nil
}

func analyze(ctx context.Context, cmd *cli.Command) error {
	root, err := singleArg(cmd, "dir")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Bool("no-cache") {
		cfg.Analysis.WriteCache = false
	}

	out, err := internal.NewService(cfg, internal.NewLogger(cfg.App.LogLevel)).Analyze(ctx, root)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, out)
	return err
}

func openFile(ctx context.Context, cmd *cli.Command) error {
	path, err := singleArg(cmd, "file")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := internal.NewService(cfg, internal.NewLogger(cfg.App.LogLevel)).Open(ctx, path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, out)
	return err
}

func convert(_ context.Context, cmd *cli.Command) error {
	path, err := singleArg(cmd, "file.dot")
	if err != nil {
		return err
	}
	out, err := dot.ConvertFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, out)
	return err
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.RunMCP(ctx, version, internal.WithConfig(cfg))
}

func main() {
	cmd := &cli.Command{
		Name:    "nexus",
		Usage:   "Build a knowledge graph from the front matter of a directory of Markdown notes",
		Version: version,
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
				Name:      "analyze",
				Usage:     "Analyze a directory and print the graph JSON",
				ArgsUsage: "<dir>",
				Action:    analyze,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-cache",
						Usage: "Do not write the result file into the analyzed directory",
					},
				},
			},
			{
				Name:      "open",
				Usage:     "Print renderer JSON for a .json or .dot graph file",
				ArgsUsage: "<file>",
				Action:    openFile,
			},
			{
				Name:      "convert",
				Usage:     "Convert a Graphviz DOT file to renderer JSON",
				ArgsUsage: "<file.dot>",
				Action:    convert,
			},
			{
				Name:   "serve",
				Usage:  "Serve the HTTP API",
				Action: serve,
			},
			{
				Name:   "mcp",
				Usage:  "Serve MCP tools over stdio",
				Action: serveMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
