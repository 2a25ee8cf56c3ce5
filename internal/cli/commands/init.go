package commands

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initForce bool

// validateProjectName validates project name input.
func validateProjectName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) == 0 || len(name) > 100 {
		return fmt.Errorf("project name must be 1-100 characters")
	}

	matched, _ := regexp.MatchString(`^[a-zA-Z0-9 _-]+$`, name)
	if !matched {
		return fmt.Errorf("project name can only contain letters, numbers, spaces, dashes, and underscores")
	}

	return nil
}

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a schemadoc configuration and sample manifest",
		Long: `Interactively create schemadoc.yaml and a starter type manifest
in the current directory.`,
		RunE: runInit,
	}

	cmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgCyan)

	answers := struct {
		Name        string
		Version     string
		Description string
		Manifest    string
		Formats     []string
	}{}

	questions := []*survey.Question{
		{
			Name:   "name",
			Prompt: &survey.Input{Message: "Project name:"},
			Validate: func(ans interface{}) error {
				s, _ := ans.(string)
				return validateProjectName(s)
			},
		},
		{
			Name:   "version",
			Prompt: &survey.Input{Message: "API version:", Default: "1.0.0"},
		},
		{
			Name:   "description",
			Prompt: &survey.Input{Message: "Description (optional):"},
		},
		{
			Name:   "manifest",
			Prompt: &survey.Input{Message: "Manifest file:", Default: "apitypes.yaml"},
		},
		{
			Name: "formats",
			Prompt: &survey.MultiSelect{
				Message: "Output formats:",
				Options: []string{"openapi", "openapi-yaml", "markdown"},
				Default: []string{"openapi"},
			},
		},
	}

	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	if !initForce {
		for _, path := range []string{"schemadoc.yaml", answers.Manifest} {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
	}

	if err := writeConfigFile(answers.Name, answers.Version, answers.Description, answers.Manifest, answers.Formats); err != nil {
		return err
	}
	if err := writeSampleManifest(answers.Manifest, answers.Name, answers.Version, answers.Description); err != nil {
		return err
	}

	successColor.Println("✓ Created schemadoc.yaml")
	successColor.Printf("✓ Created %s\n", answers.Manifest)
	infoColor.Println("Run 'schemadoc generate' to build your documentation")
	return nil
}

func writeConfigFile(name, version, description, manifest string, formats []string) error {
	cfg := map[string]interface{}{
		"project": map[string]interface{}{
			"name":        name,
			"version":     version,
			"description": description,
		},
		"manifest": manifest,
		"output": map[string]interface{}{
			"dir":     "docs",
			"formats": formats,
		},
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile("schemadoc.yaml", data, 0644); err != nil {
		return fmt.Errorf("failed to write schemadoc.yaml: %w", err)
	}
	return nil
}

func writeSampleManifest(path, name, version, description string) error {
	var buf strings.Builder

	buf.WriteString("project:\n")
	buf.WriteString(fmt.Sprintf("  name: %q\n", name))
	buf.WriteString(fmt.Sprintf("  version: %q\n", version))
	if description != "" {
		buf.WriteString(fmt.Sprintf("  description: %q\n", description))
	}
	buf.WriteString(`
types:
  - name: example.Item
    fields:
      - name: sku
        type: string
      - name: quantity
        type: int

  - name: example.Order
    fields:
      - name: id
        type: uuid
      - name: items
        type: list<example.Item>
      - name: attributes
        type: map<string,string>

operations:
  - method: POST
    path: /orders
    summary: Create an order
    request:
      type: example.Order
      description: Order to create
    responses:
      "201":
        type: example.Order
        description: Created order
`)

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
