// Package commands wires the schemadoc CLI.
package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schemadoc",
		Short: "API documentation schema generator",
		Long: color.CyanString(`schemadoc - build-time API documentation generator

schemadoc derives an OpenAPI schema document from a declared type graph:
each named type becomes one deduplicated schema definition, referenced
wherever it recurs, with collections, maps and inheritance resolved
recursively.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewServeCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			bold := color.New(color.Bold)
			bold.Printf("schemadoc %s\n", Version)
			cmd.Printf("  commit:  %s\n", GitCommit)
			cmd.Printf("  built:   %s\n", BuildDate)
			cmd.Printf("  go:      %s\n", runtime.Version())
		},
	}
}
