package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/doi2cff/internal/cff"
)

var initCffFn string

func init() {
	initCmd.Flags().StringVar(&initCffFn, "cff_fn", "CITATION.cff", "Name of citation formatted output file")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <doi>",
	Short: "Generate a CITATION.cff file from the Zenodo DOI of a GitHub release",
	Long: `Generate a CITATION.cff file from the Zenodo DOI of a GitHub release.

The DOI may be given bare (10.5281/zenodo.xxxxxx) or as a doi.org URL.
The target file must not exist yet.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	doi := args[0]

	// Exclusive create: an existing citation file is never clobbered.
	f, err := os.OpenFile(initCffFn, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			exitWithError(ExitError, "%s already exists", initCffFn)
		}
		exitWithError(ExitError, "creating %s: %v", initCffFn, err)
	}

	// No partial output: remove the created file if conversion fails.
	fail := func(code int, format string, args ...interface{}) {
		f.Close()
		os.Remove(initCffFn)
		exitWithError(code, format, args...)
	}

	doc, err := newBuilder().Init(cmd.Context(), doi)
	if err != nil {
		fail(exitCodeFor(err), "%v", err)
	}

	data, err := cff.Encode(doc)
	if err != nil {
		fail(ExitError, "%v", err)
	}

	if _, err := f.Write(data); err != nil {
		fail(ExitError, "writing %s: %v", initCffFn, err)
	}
	if err := f.Close(); err != nil {
		fail(ExitError, "writing %s: %v", initCffFn, err)
	}

	fmt.Printf("%s file has been written\n", initCffFn)
	return nil
}
