package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/schemadoc-dev/schemadoc/internal/watch"
)

var (
	servePort  int
	serveWatch bool
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated documentation locally",
		Long: `Start a local HTTP server for the generated documentation.

The server exposes the output directory, so an OpenAPI viewer can be
pointed at http://localhost:<port>/openapi.json. With --watch the manifest
is regenerated on change and connected viewers are notified over the
/reload WebSocket endpoint.`,
		RunE: runServe,
	}

	cmd.Flags().IntVarP(&servePort, "port", "p", 8000, "Port to serve on")
	cmd.Flags().StringVarP(&genManifest, "manifest", "m", "", "Type manifest file (defaults to config)")
	cmd.Flags().StringVarP(&genOutput, "output", "o", "", "Documentation directory (defaults to config)")
	cmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "Regenerate on change and notify viewers")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	infoColor := color.New(color.FgCyan)
	errorColor := color.New(color.FgRed, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)

	docsConfig, manifestPath, err := generatorSetup()
	if err != nil {
		errorColor.Printf("Error: %v\n", err)
		return err
	}

	if _, err := os.Stat(docsConfig.OutputDir); os.IsNotExist(err) {
		errorColor.Println("Error: documentation not found")
		infoColor.Println("Run 'schemadoc generate' first")
		return fmt.Errorf("documentation directory %s not found", docsConfig.OutputDir)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	var reload *watch.ReloadServer
	if serveWatch {
		reload = watch.NewReloadServer()
		defer reload.Close()
		r.Get("/reload", reload.HandleWebSocket)
	}
	r.Handle("/*", http.FileServer(http.Dir(docsConfig.OutputDir)))

	addr := fmt.Sprintf("localhost:%d", servePort)
	successColor.Printf("✓ Documentation server running at http://%s\n", addr)
	infoColor.Println("Press Ctrl+C to stop")

	if serveWatch {
		go func() {
			infoColor.Println("Watching for changes...")
			if err := watchAndRegenerate(manifestPath, docsConfig, reload); err != nil {
				errorColor.Printf("Watch error: %v\n", err)
			}
		}()
	}

	return http.ListenAndServe(addr, r)
}
