package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cardboard/internal/board"
	"github.com/aidanlsb/cardboard/internal/slugs"
	"github.com/aidanlsb/cardboard/internal/ui"
)

var (
	exportOutput   string
	exportNoBackup bool
)

type exportResult struct {
	File     string `json:"file"`
	Contacts int    `json:"contacts"`
	Backup   string `json:"backup,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Re-export a vCard file with normalised folding",
	Long: `Parse a vCard file and write it back out.

Long lines are folded at export.fold_width; photos keep the width they were
folded at. The file is replaced atomically, and the previous version is kept
next to it with a .bak suffix unless export.backup is false or --no-backup is
given.

Examples:
  cardboard export contacts.vcf
  cardboard export contacts.vcf -o tidy.vcf
  cardboard export "My Contacts.vcf" -o backups/   # writes backups/my-contacts.vcf`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file or directory instead of replacing the input")
	exportCmd.Flags().BoolVar(&exportNoBackup, "no-backup", false, "Do not keep a .bak copy of the replaced file")
}

func runExport(cmd *cobra.Command, args []string) error {
	opts := boardOptions()
	if exportNoBackup {
		opts.Backup = false
	}
	b, cols, err := loadBoardWith(cmd.Context(), args, opts)
	if err != nil {
		return handleErr(err, ErrFileReadError, "")
	}

	col := cols[0]
	res, err := saveColumn(b, col, exportOutput)
	if err != nil {
		return handleErr(err, ErrFileWriteError, "")
	}

	if isJSONOutput() {
		outputSuccess(res, nil)
		return nil
	}
	fmt.Println(ui.Successf("Exported %d %s to %s",
		res.Contacts, pluralize("contact", res.Contacts), ui.FilePath(res.File)))
	if res.Backup != "" {
		fmt.Println(ui.Hint("  previous version kept at " + res.Backup))
	}
	return nil
}

func saveColumn(b *board.Board, col *board.Column, out string) (exportResult, error) {
	if out != "" {
		abs, err := filepath.Abs(out)
		if err != nil {
			return exportResult{}, err
		}
		out = abs
		// A directory receives the file under the column's slug.
		if info, err := os.Stat(out); err == nil && info.IsDir() {
			out = filepath.Join(out, slugs.FileSlug(col.Document.Name)+".vcf")
		}
	}
	backup, err := b.Save(col.ID(), out)
	if err != nil {
		return exportResult{}, err
	}
	file := out
	if file == "" {
		file = col.Path
	}
	return exportResult{
		File:     file,
		Contacts: col.Document.Len(),
		Backup:   backup,
	}, nil
}
