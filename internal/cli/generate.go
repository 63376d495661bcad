package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/buildgraph/bzlgen/pkg/project"
	"github.com/buildgraph/bzlgen/pkg/workspace"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	manifest string // manifest path
	out      string // output directory
	dryRun   bool   // print to stdout instead of writing
	check    bool   // verify files on disk are up to date
}

// generateCommand creates the generate command, the main entry point of
// the tool: manifest in, WORKSPACE and BUILD files out.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{manifest: project.ManifestName, out: "."}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate WORKSPACE and BUILD files from the manifest",
		Long: `Generate reads the project manifest and emits a WORKSPACE file plus one
BUILD file per module. Output is deterministic: regenerating an unchanged
manifest produces byte-identical files.

Examples:
  bzlgen generate                   # Write files next to bzlgen.toml
  bzlgen generate --dry-run         # Preview on stdout
  bzlgen generate --check           # Fail if files on disk are stale (CI)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", opts.manifest, "manifest file path")
	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "output directory")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print generated files to stdout without writing")
	cmd.Flags().BoolVar(&opts.check, "check", false, "verify generated files are up to date without writing")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	p, err := project.Load(opts.manifest)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d modules, %d artifacts from %s",
		len(p.Modules), len(p.Artifacts), opts.manifest)

	files, err := workspace.Generate(p)
	if err != nil {
		return err
	}

	switch {
	case opts.dryRun:
		out := cmd.OutOrStdout()
		for _, f := range files {
			fmt.Fprintln(out, StyleTitle.Render("# "+f.Path))
			fmt.Fprintln(out, f.Content)
		}
		return nil

	case opts.check:
		stale := staleFiles(opts.out, files)
		if len(stale) > 0 {
			for _, path := range stale {
				printError("out of date: %s", path)
			}
			return fmt.Errorf("%d generated files are out of date; run %s generate", len(stale), appName)
		}
		printSuccess("All %d generated files are up to date", len(files))
		return nil

	default:
		if err := workspace.Write(opts.out, files); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Generated %d files", len(files)))
		for _, f := range files {
			printFile(filepath.Join(opts.out, f.Path))
		}
		return nil
	}
}

// staleFiles returns the paths whose on-disk content differs from the
// generated content. Missing files count as stale.
func staleFiles(dir string, files []workspace.File) []string {
	var stale []string
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Path))
		if err != nil || string(data) != f.Content {
			stale = append(stale, f.Path)
		}
	}
	return stale
}
