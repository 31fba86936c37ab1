package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cardboard/internal/ui"
	"github.com/aidanlsb/cardboard/internal/vcard"
)

// errInvalidLines makes check exit non-zero after it has printed its report.
var errInvalidLines = fmt.Errorf("vCard files contain lines that could not be handled")

type checkFileResult struct {
	File     string    `json:"file"`
	Contacts int       `json:"contacts"`
	Invalid  []string  `json:"invalid_contacts,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Report vCard lines that could not be handled",
	Long: `Parse vCard files and list every line that could not be parsed or was degraded.

Unhandled lines are kept verbatim on export; check only reports them. The
command exits non-zero when any card has invalid lines.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, cols, err := loadBoard(cmd.Context(), args)
	if err != nil {
		return handleErr(err, ErrFileReadError, "")
	}

	var results []checkFileResult
	var all []Warning
	invalid := false
	for _, col := range cols {
		res := checkFileResult{
			File:     col.Path,
			Contacts: col.Document.Len(),
			Warnings: warningsFrom(col.Path, col.Document.Warnings()),
		}
		for _, c := range col.Document.Contacts() {
			if c.HasInvalidLines() {
				res.Invalid = append(res.Invalid, c.ID)
			}
		}
		if col.Document.HasInvalidLines() {
			invalid = true
		}
		results = append(results, res)
		all = append(all, res.Warnings...)
	}

	if isJSONOutput() {
		if invalid {
			outputJSON(Response{
				OK:       false,
				Data:     results,
				Warnings: all,
				Error: &ErrorInfo{
					Code:    ErrInvalidLines,
					Message: errInvalidLines.Error(),
				},
			})
			return errInvalidLines
		}
		outputSuccess(results, &Meta{Count: len(results)})
		return nil
	}

	for i, col := range cols {
		res := results[i]
		ws := col.Document.Warnings()
		header := formatFileLink(col.Path, col.Path, ui.FilePath)
		if len(ws) == 0 {
			fmt.Println(ui.Successf("%s %s", header, ui.Count(res.Contacts, "contact", "contacts")))
			continue
		}
		fmt.Println(ui.Errorf("%s %s", header, ui.Count(len(ws), "warning", "warnings")))
		printWarnings(ws)
		if len(res.Invalid) > 0 {
			list := ui.NewList()
			for _, id := range res.Invalid {
				list.Add(id)
			}
			fmt.Println(ui.Hint("  Unparsed lines are kept as written in:"))
			fmt.Print(list.String())
		}
	}

	if invalid {
		return errInvalidLines
	}
	return nil
}

// printWarnings lists ws grouped under the contact each belongs to.
func printWarnings(ws []vcard.Warning) {
	width := ui.LineNumWidth(ws)
	contact := ""
	for _, w := range ws {
		if w.Contact != contact {
			contact = w.Contact
			if contact != "" {
				fmt.Printf("  %s\n", ui.Bold.Render(contact))
			}
		}
		fmt.Println(ui.FormatWarning(w, width))
	}
}
