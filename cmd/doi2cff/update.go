package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var updateCffFn string

func init() {
	updateCmd.Flags().StringVar(&updateCffFn, "cff_fn", "CITATION.cff", "Name of citation formatted output file")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <doi>",
	Short: "Update CITATION.cff with the doi, version and release date of a new release",
	Long: `Update an existing CITATION.cff with the doi, version and release date
of a new release. All other fields and comments are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	doi := args[0]

	// Open read+write up front so a read-only file fails before any fetch.
	f, err := os.OpenFile(updateCffFn, os.O_RDWR, 0)
	if err != nil {
		exitWithError(ExitError, "opening %s: %v", updateCffFn, err)
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", updateCffFn, err)
	}

	updated, err := newBuilder().Update(cmd.Context(), doi, data)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	if err := writeFileAtomic(updateCffFn, updated); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	fmt.Printf("%s file has been updated\n", updateCffFn)
	return nil
}

// writeFileAtomic writes data to a temporary file in the target's
// directory and renames it into place, so shorter content never leaves
// stale trailing bytes and a failed write never corrupts the original.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}

	if info, err := os.Stat(path); err == nil {
		os.Chmod(tmpName, info.Mode())
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
