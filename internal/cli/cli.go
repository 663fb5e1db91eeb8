// Package cli implements the pixelboard command-line interface.
//
// # Commands
//
//   - run: drive the board on a terminal, a full-screen view, an LED panel
//     or as PNG frames
//   - snapshot: render a few frames to PNG without a display
//   - inspect: export the solved node tree as DOT, SVG or a PNG wireframe
//   - config: write or print the board description
//   - completion: shell completion scripts
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose (-v) enables debug
// output, which includes one line per frame.
package cli

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/K-JBoon/pixelboard/pkg/buildinfo"
	"github.com/K-JBoon/pixelboard/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pixelboard"

	// boardFile is the board description looked up in the config directory.
	boardFile = "board.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stdout     io.Writer
	stderr     io.Writer
	configPath string
}

// New creates a CLI that logs to w at level. Command output goes to
// os.Stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stdout: os.Stdout,
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output.
func (c *CLI) SetOutput(w io.Writer) {
	c.stdout = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pixelboard renders widget layouts onto pixel displays",
		Long:         `Pixelboard lays out a tree of nodes on a fixed-size pixel canvas, paints each node's widgets once per frame and shows the result on a terminal or an LED matrix.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "board description (default: "+displayPath(defaultConfigPath())+" or the built-in board)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Board Loading
// =============================================================================

// loadConfig loads the board named by --config, then the user's board file,
// then falls back to the built-in board.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		c.Logger.Debug("loading board", "path", c.configPath)
		return config.Load(c.configPath)
	}
	if path := defaultConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			c.Logger.Debug("loading board", "path", path)
			return config.Load(path)
		} else if !stderrors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	c.Logger.Debug("using built-in board")
	return config.Default(), nil
}

// =============================================================================
// Paths
// =============================================================================

// defaultConfigPath returns the board file using the XDG standard
// (~/.config/pixelboard/board.toml), or "" if no home directory is known.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, boardFile)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, boardFile)
}

// displayPath abbreviates the home directory as ~.
func displayPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if rest, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rest
	}
	return path
}
