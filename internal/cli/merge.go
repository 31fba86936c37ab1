package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cardboard/internal/merge"
	"github.com/aidanlsb/cardboard/internal/ui"
	"github.com/aidanlsb/cardboard/internal/view"
)

var (
	mergeDrop bool
	mergeYes  bool
)

var errMergeDeclined = errors.New("merge not confirmed")

type mergeResult struct {
	Left    string        `json:"left"`
	Right   string        `json:"right"`
	Moved   int           `json:"moved"`
	Dropped bool          `json:"dropped"`
	Rows    merge.Columns `json:"rows"`
	File    *exportResult `json:"file,omitempty"`
}

var mergeCmd = &cobra.Command{
	Use:   "merge <file> <left-id> <right-id>",
	Short: "Merge two contacts of a file",
	Long: `Merge two contacts of a file by moving every property of the right
contact that the left one lacks onto the left contact.

The merged rows are previewed and must be confirmed, or --yes given. With
--drop the right contact is removed once nothing visible is left on it.

Examples:
  cardboard merge contacts.vcf john-smith john-smith-2
  cardboard merge contacts.vcf john-smith john-smith-2 --drop --yes`,
	Args: cobra.ExactArgs(3),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().BoolVar(&mergeDrop, "drop", false, "Remove the right contact when it ends up empty")
	mergeCmd.Flags().BoolVarP(&mergeYes, "yes", "y", false, "Apply without confirmation")
}

func runMerge(cmd *cobra.Command, args []string) error {
	path, leftID, rightID := args[0], args[1], args[2]

	b, cols, err := loadBoard(cmd.Context(), []string{path})
	if err != nil {
		return handleErr(err, ErrFileReadError, "")
	}
	col := cols[0]

	res := mergeResult{Left: leftID, Right: rightID}
	err = b.Merge(col.ID(), leftID, rightID, mergeDrop, func(s *merge.Session) error {
		moved, err := s.Absorb(merge.Right)
		if err != nil {
			return err
		}
		res.Moved = moved
		res.Rows = s.Rows()
		res.Dropped = mergeDrop && s.Emptied(merge.Right)

		if mergeYes {
			return nil
		}
		if !isJSONOutput() {
			printMergePreview(leftID, rightID, res.Rows)
		}
		if !shouldPromptForConfirm() {
			return errMergeDeclined
		}
		noun := "properties"
		if moved == 1 {
			noun = "property"
		}
		if !promptForConfirm(fmt.Sprintf("Move %d %s onto %s?", moved, noun, leftID)) {
			return errMergeDeclined
		}
		return nil
	})
	if errors.Is(err, errMergeDeclined) {
		if isJSONOutput() {
			outputJSON(Response{
				OK:   false,
				Data: res,
				Error: &ErrorInfo{
					Code:       ErrConfirmationRequired,
					Message:    "merge needs confirmation",
					Suggestion: "Re-run with --yes to apply",
				},
			})
			return nil
		}
		if !shouldPromptForConfirm() {
			fmt.Println(ui.Hint("Re-run with --yes to apply."))
		} else {
			fmt.Println("Merge cancelled.")
		}
		return nil
	}
	if err != nil {
		return handleErr(err, ErrInvalidInput, "")
	}

	saved, err := saveColumn(b, col, "")
	if err != nil {
		return handleErr(err, ErrFileWriteError, "")
	}
	res.File = &saved

	if isJSONOutput() {
		outputSuccess(res, nil)
		return nil
	}
	fmt.Println(ui.Successf("Merged %s into %s %s", ui.AccentBold.Render(rightID), ui.AccentBold.Render(leftID),
		ui.Count(res.Moved, "property moved", "properties moved")))
	if res.Dropped {
		fmt.Println(ui.Hint("  removed " + rightID))
	}
	return nil
}

func printMergePreview(leftID, rightID string, rows merge.Columns) {
	tbl := ui.NewTable(3)
	tbl.AddRow(ui.Header(leftID), "", ui.Header(rightID))
	n := len(rows.Left)
	if len(rows.Right) > n {
		n = len(rows.Right)
	}
	for i := 0; i < n; i++ {
		tbl.AddRow(mergeCell(rows.Left, i), ui.Hint("│"), mergeCell(rows.Right, i))
	}
	fmt.Print(tbl.String())
}

func mergeCell(rows []view.Row, i int) string {
	if i >= len(rows) {
		return ""
	}
	r := rows[i]
	cell := ui.Muted.Render(r.Label) + " " + ui.TruncateWithEllipsis(r.Value, 40)
	if r.Parameters != "" {
		cell += " " + ui.Hint("("+r.Parameters+")")
	}
	return cell
}
