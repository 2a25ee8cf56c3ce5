package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemadoc-dev/schemadoc/internal/cli/ui"
	"github.com/schemadoc-dev/schemadoc/internal/descriptor"
	"github.com/schemadoc-dev/schemadoc/internal/docs"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the schema definitions a manifest produces",
		Long: `Derive the full schema document and print every named definition
with its property names, without writing any output files.`,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&genManifest, "manifest", "m", "", "Type manifest file (defaults to config)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	docsConfig, manifestPath, err := generatorSetup()
	if err != nil {
		return err
	}

	manifest, err := descriptor.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	doc, err := docs.NewGenerator(docsConfig).BuildDocument(manifest)
	if err != nil {
		return err
	}

	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		fmt.Println("No schema definitions derived.")
		return nil
	}

	table := ui.NewTable(os.Stdout, "SCHEMA", "PROPERTIES", "FIELDS")
	for _, name := range sortedSchemaNames(doc.Components.Schemas) {
		def := doc.Components.Schemas[name]
		table.AddRow(name, strconv.Itoa(def.PropertyCount()), strings.Join(def.PropertyNames(), ", "))
	}
	table.Render()
	return nil
}

func sortedSchemaNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
