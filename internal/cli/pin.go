package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildgraph/bzlgen/pkg/project"
)

// pinOpts holds the command-line flags for the pin command.
type pinOpts struct {
	manifest    string // manifest path
	all         bool   // re-resolve already pinned artifacts too
	interactive bool   // pick artifacts in a TUI
	refresh     bool   // bypass the registry cache
}

// pinCommand creates the pin command, which resolves manifest coordinates
// against Maven Central and writes the versions back.
func (c *CLI) pinCommand() *cobra.Command {
	opts := pinOpts{manifest: project.ManifestName}

	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Pin artifact coordinates to their latest versions",
		Long: `Pin looks up every unpinned "group:artifact" coordinate in the manifest
on Maven Central and rewrites it as "group:artifact:version".

The manifest is rewritten in place; TOML comments are not preserved.

Examples:
  bzlgen pin                 # Pin all unpinned artifacts
  bzlgen pin --all           # Re-resolve pinned artifacts too
  bzlgen pin --interactive   # Choose artifacts in a picker`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPin(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", opts.manifest, "manifest file path")
	cmd.Flags().BoolVar(&opts.all, "all", false, "re-resolve artifacts that already carry a version")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "select artifacts interactively")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the registry cache")

	return cmd
}

func (c *CLI) runPin(ctx context.Context, opts *pinOpts) error {
	logger := loggerFromContext(ctx)

	p, err := project.Load(opts.manifest)
	if err != nil {
		return err
	}

	candidates := pinCandidates(p.Artifacts, opts.all)
	if len(candidates) == 0 {
		printInfo("All artifacts are pinned")
		return nil
	}

	if opts.interactive {
		candidates, err = pickArtifacts(candidates)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			printInfo("Nothing selected")
			return nil
		}
	}

	client, err := newMavenClient()
	if err != nil {
		return err
	}

	pinned := 0
	for _, a := range candidates {
		spinner := newSpinner(ctx, fmt.Sprintf("Resolving %s", a.GroupArtifact()))
		spinner.Start()

		info, err := client.FetchArtifact(ctx, a.Coordinate, opts.refresh)
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("%s: %v", a.Name, err))
			return err
		}
		spinner.Stop()

		coordinate := info.Coordinate()
		if coordinate == a.Coordinate {
			printDetail("%s already at %s", a.Name, info.Version)
			continue
		}
		logger.Debugf("Pinning %s to %s", a.Name, info.Version)
		setCoordinate(p, a.Name, coordinate)
		printSuccess("%s %s %s", a.Name, iconArrow, info.Version)
		pinned++
	}

	if pinned == 0 {
		printInfo("Everything already up to date")
		return nil
	}

	printWarning("Rewriting %s; TOML comments are not preserved", opts.manifest)
	if err := project.Save(p, opts.manifest); err != nil {
		return err
	}
	printSuccess("Pinned %d artifacts", pinned)
	printNextStep("Regenerate build files", appName+" generate")
	return nil
}

// pinCandidates selects which artifacts to resolve: the unpinned ones, or
// all of them when repin is set.
func pinCandidates(artifacts []project.Artifact, repin bool) []project.Artifact {
	var out []project.Artifact
	for _, a := range artifacts {
		if repin || !a.Pinned() {
			out = append(out, a)
		}
	}
	return out
}

func setCoordinate(p *project.Project, name, coordinate string) {
	for i := range p.Artifacts {
		if p.Artifacts[i].Name == name {
			p.Artifacts[i].Coordinate = coordinate
			return
		}
	}
}
