// Package cli implements the bzlgen command-line interface.
//
// The CLI turns a bzlgen.toml manifest into build-description files
// (generate), visualizes the module dependency graph (graph), resolves
// unpinned Maven coordinates (pin), seeds artifacts from an existing
// pom.xml (import-pom), and manages the HTTP response cache (cache).
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/buildgraph/bzlgen/pkg/buildinfo"
	"github.com/buildgraph/bzlgen/pkg/integrations/maven"
)

const (
	// appName is the application name used for directories and display.
	appName = "bzlgen"

	// registryCacheTTL is how long Maven Central responses are cached.
	registryCacheTTL = 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "bzlgen generates Bazel build files for Scala projects",
		Long:         `bzlgen reads a bzlgen.toml project manifest and emits the WORKSPACE and BUILD files a Bazel build of the project needs, with deterministic formatting so generated output diffs cleanly.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.pinCommand())
	root.AddCommand(c.importPOMCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newMavenClient creates the Maven Central client used by pin.
func newMavenClient() (*maven.Client, error) {
	return maven.NewClient(registryCacheTTL)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/bzlgen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
