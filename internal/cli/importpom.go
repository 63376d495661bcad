package cli

import (
	"github.com/spf13/cobra"

	"github.com/buildgraph/bzlgen/pkg/project"
)

// importPOMCommand creates the import-pom command, which seeds manifest
// artifacts from an existing Maven build.
func (c *CLI) importPOMCommand() *cobra.Command {
	manifest := project.ManifestName

	cmd := &cobra.Command{
		Use:   "import-pom <pom.xml>",
		Short: "Import artifacts from a Maven pom.xml into the manifest",
		Long: `Import-pom reads the compile-scope dependencies of a pom.xml and adds
them to the manifest as artifacts. Test, provided, and optional
dependencies are skipped. Artifacts already present in the manifest are
left untouched.

The manifest is rewritten in place; TOML comments are not preserved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImportPOM(cmd, manifest, args[0])
		},
	}

	cmd.Flags().StringVarP(&manifest, "manifest", "m", manifest, "manifest file path")

	return cmd
}

func (c *CLI) runImportPOM(cmd *cobra.Command, manifestPath, pomPath string) error {
	logger := loggerFromContext(cmd.Context())

	p, err := project.Load(manifestPath)
	if err != nil {
		return err
	}

	imported, err := project.FromPOM(pomPath)
	if err != nil {
		return err
	}
	logger.Debugf("Found %d dependencies in %s", len(imported), pomPath)

	known := make(map[string]bool, len(p.Artifacts))
	for _, a := range p.Artifacts {
		known[a.Name] = true
	}

	added, skipped := 0, 0
	for _, a := range imported {
		if known[a.Name] {
			printDetail("%s already in manifest", a.Name)
			skipped++
			continue
		}
		p.Artifacts = append(p.Artifacts, a)
		printSuccess("%s (%s)", a.Name, a.Coordinate)
		added++
	}

	if added == 0 {
		printInfo("No new artifacts to import")
		return nil
	}

	printWarning("Rewriting %s; TOML comments are not preserved", manifestPath)
	if err := project.Save(p, manifestPath); err != nil {
		return err
	}
	printSuccess("Imported %d artifacts (%d already present)", added, skipped)
	printNextStep("Pin unversioned coordinates", appName+" pin")
	return nil
}
