// Package main provides the doi2cff CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matsen/doi2cff/internal/convert"
	"github.com/matsen/doi2cff/internal/csl"
	"github.com/matsen/doi2cff/internal/zenodo"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doi2cff",
	Short: "Generate or update a CITATION.cff from a Zenodo DOI",
	Long: `doi2cff converts the Zenodo record of a GitHub software release into
a CITATION.cff citation file, and updates an existing file with the
doi, version and release date of a new release.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}

// newBuilder wires the converter to the live Zenodo and doi.org clients.
// A .env file, if present, supplies ZENODO_TOKEN.
func newBuilder() *convert.Builder {
	_ = godotenv.Load()
	return convert.NewBuilder(zenodo.NewClient(), csl.NewClient())
}
