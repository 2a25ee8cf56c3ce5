package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/schemadoc-dev/schemadoc/internal/cli/config"
	"github.com/schemadoc-dev/schemadoc/internal/descriptor"
	"github.com/schemadoc-dev/schemadoc/internal/docs"
	"github.com/schemadoc-dev/schemadoc/internal/watch"
)

var (
	genManifest    string
	genFormat      []string
	genOutput      string
	genBaseURL     string
	genProjectName string
	genProjectDesc string
	genVersion     string
	genWatch       bool
	genVerbose     bool
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate API documentation from a type manifest",
		Long: `Generate API documentation from a type manifest.

The generate command loads the type manifest, derives a schema for every
type reachable from the documented operations, and writes the result in
one or more formats:
  - openapi:      OpenAPI 3.0 JSON specification
  - openapi-yaml: OpenAPI 3.0 YAML specification
  - markdown:     Markdown documentation files`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&genManifest, "manifest", "m", "", "Type manifest file (defaults to config)")
	cmd.Flags().StringSliceVarP(&genFormat, "format", "f", nil, "Output format(s): openapi, openapi-yaml, markdown")
	cmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output directory (defaults to config)")
	cmd.Flags().StringVar(&genBaseURL, "base-url", "", "Base URL for the API")
	cmd.Flags().StringVar(&genProjectName, "name", "", "Project name (overrides manifest)")
	cmd.Flags().StringVar(&genProjectDesc, "description", "", "Project description (overrides manifest)")
	cmd.Flags().StringVar(&genVersion, "version", "", "API version (overrides manifest)")
	cmd.Flags().BoolVarP(&genWatch, "watch", "w", false, "Watch the manifest and regenerate on change")
	cmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	successColor := color.New(color.FgGreen, color.Bold)
	errorColor := color.New(color.FgRed, color.Bold)
	infoColor := color.New(color.FgCyan)

	docsConfig, manifestPath, err := generatorSetup()
	if err != nil {
		errorColor.Printf("Error: %v\n", err)
		return err
	}

	infoColor.Printf("Generating documentation from %s...\n", manifestPath)

	if err := generateOnce(manifestPath, docsConfig); err != nil {
		errorColor.Printf("Error: %v\n", err)
		return err
	}

	elapsed := time.Since(startTime)
	successColor.Printf("✓ Documentation generated in %v\n", elapsed)
	infoColor.Printf("Output: %s\n", docsConfig.OutputDir)

	if genWatch {
		infoColor.Println("Watching for changes...")
		return watchAndRegenerate(manifestPath, docsConfig, nil)
	}

	return nil
}

// generatorSetup merges the config file with command-line overrides.
func generatorSetup() (*docs.Config, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	manifestPath := genManifest
	if manifestPath == "" {
		manifestPath = cfg.Manifest
	}

	outputDir := genOutput
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}

	formatNames := genFormat
	if len(formatNames) == 0 {
		formatNames = cfg.Output.Formats
	}
	formats := make([]docs.Format, 0, len(formatNames))
	for _, name := range formatNames {
		format, err := docs.ParseFormat(name)
		if err != nil {
			return nil, "", err
		}
		formats = append(formats, format)
	}
	if len(formats) == 0 {
		formats = []docs.Format{docs.FormatOpenAPI}
	}

	baseURL := genBaseURL
	if baseURL == "" {
		baseURL = cfg.API.BaseURL
	}

	servers := make([]docs.ServerURL, 0, len(cfg.API.Servers))
	for _, s := range cfg.API.Servers {
		servers = append(servers, docs.ServerURL{URL: s.URL, Description: s.Description})
	}

	var logger *zap.Logger
	if genVerbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, "", fmt.Errorf("failed to create logger: %w", err)
		}
	}

	docsConfig := &docs.Config{
		OutputDir:  outputDir,
		Formats:    formats,
		BaseURL:    baseURL,
		ServerURLs: servers,
		Logger:     logger,
	}
	return docsConfig, manifestPath, nil
}

// generateOnce loads the manifest and runs a full generation pass.
func generateOnce(manifestPath string, docsConfig *docs.Config) error {
	manifest, err := descriptor.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	applyProjectOverrides(manifest)

	return docs.NewGenerator(docsConfig).Generate(manifest)
}

// applyProjectOverrides lets command-line flags win over manifest values.
func applyProjectOverrides(manifest *descriptor.Manifest) {
	if genProjectName != "" {
		manifest.Project.Name = genProjectName
	}
	if genProjectDesc != "" {
		manifest.Project.Description = genProjectDesc
	}
	if genVersion != "" {
		manifest.Project.Version = genVersion
	}
}

// watchAndRegenerate blocks, rerunning generation whenever the manifest or
// config changes. A non-nil reload server is notified around each pass.
func watchAndRegenerate(manifestPath string, docsConfig *docs.Config, reload *watch.ReloadServer) error {
	infoColor := color.New(color.FgCyan)
	successColor := color.New(color.FgGreen, color.Bold)
	errorColor := color.New(color.FgRed, color.Bold)

	patterns := []string{filepath.Base(manifestPath), "schemadoc.yaml", "schemadoc.yml"}
	ignored := []string{"*.tmp", "*.swp"}

	watcher, err := watch.NewFileWatcher(patterns, ignored, func(files []string) error {
		infoColor.Printf("Change detected: %d file(s)\n", len(files))
		if reload != nil {
			reload.NotifyGenerating(files)
		}

		start := time.Now()
		if err := generateOnce(manifestPath, docsConfig); err != nil {
			errorColor.Printf("Generation error: %v\n", err)
			if reload != nil {
				reload.NotifyError(err)
			}
			return err
		}

		successColor.Println("✓ Documentation regenerated")
		if reload != nil {
			reload.NotifyReload(time.Since(start))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	dirs := []string{"."}
	if dir := filepath.Dir(manifestPath); dir != "." {
		dirs = append(dirs, dir)
	}
	if err := watcher.Start(dirs); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	// Block forever
	select {}
}
