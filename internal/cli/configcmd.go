package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/K-JBoon/pixelboard/pkg/config"
	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/fonts"
)

// configCommand creates the config command group.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the board description",
	}
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in board to a file",
		Long: `Write the built-in board description as a starting point.

Without a path the file goes to --config, or else to the user config
directory, where run, snapshot and inspect pick it up automatically.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = defaultConfigPath()
			}
			if path == "" {
				return errors.New(errors.ErrCodeInvalidInput, "no home directory; pass a path")
			}
			return c.configInit(path, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) configInit(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOutput, err, "create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, config.DefaultTOML(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOutput, err, "write %s", path)
	}
	printSuccess(c.stdout, "Board written")
	printFile(c.stdout, displayPath(path))
	return nil
}

func (c *CLI) configShowCommand() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the board in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if summary {
				c.printSummary(cfg)
				return nil
			}
			return cfg.Encode(c.stdout)
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "print a short summary instead of TOML")
	return cmd
}

func (c *CLI) printSummary(cfg *config.Config) {
	nodes, widgets := 0, 0
	var count func(n *config.Node)
	count = func(n *config.Node) {
		nodes++
		widgets += len(n.Widgets)
		for i := range n.Children {
			count(&n.Children[i])
		}
	}
	count(&cfg.Root)

	font := cfg.Canvas.Font
	if font == "" {
		font = fonts.Default
	}
	printInfo(c.stdout, StyleTitle.Render("board"))
	printKeyValue(c.stdout, "canvas", fmt.Sprintf("%dx%d @ %d fps", cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.FPS))
	printKeyValue(c.stdout, "font", font)
	printKeyValue(c.stdout, "output", cfg.Output.Kind)
	printKeyValue(c.stdout, "nodes", strconv.Itoa(nodes))
	printKeyValue(c.stdout, "widgets", strconv.Itoa(widgets))
}
