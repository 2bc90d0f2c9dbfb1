// Package cli implements the qcdraw command-line interface.
//
// This package provides commands for drawing quantum circuits as PNG
// images, emitting the intermediate typst markup, simplifying circuits,
// rendering qubit interaction graphs, and serving the render API over
// HTTP. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - draw: Render a serialized circuit to a PNG image
//   - markup: Emit the generated typst source without compiling it
//   - simplify: Cancel adjacent self-inverse gate pairs in a circuit
//   - graph: Render the qubit interaction graph
//   - serve: Run the HTTP render server
//   - cache: Manage the artifact cache
//
// # Configuration
//
// Defaults can be set in ~/.config/qcdraw/config.toml; command-line
// flags override file values.
package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/qcdraw/qcdraw/pkg/buildinfo"
	"github.com/qcdraw/qcdraw/pkg/cache"
	"github.com/qcdraw/qcdraw/pkg/circuit"
	qerrors "github.com/qcdraw/qcdraw/pkg/errors"
	"github.com/qcdraw/qcdraw/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "qcdraw"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the
// configuration loaded from disk.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "qcdraw",
		Short:        "Qcdraw renders quantum circuits as diagrams",
		Long:         `Qcdraw is a CLI tool for turning serialized quantum circuits into column-aligned diagrams, rendered through typst to publication-quality images.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.markupCommand())
	root.AddCommand(c.simplifyCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(noCache), nil, c.Logger)
}

func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/qcdraw/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.CacheDir != "" {
		return c.Config.CacheDir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// readCircuit loads a serialized circuit from path, or from stdin when
// path is "-".
func readCircuit(path string) (*circuit.Circuit, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeFileNotFound, err, "reading circuit %s", path)
	}

	var circ circuit.Circuit
	if err := json.Unmarshal(data, &circ); err != nil {
		return nil, err
	}
	return &circ, nil
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
