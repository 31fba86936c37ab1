package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cardboard/internal/ui"
)

type transferResult struct {
	Contact string         `json:"contact"`
	NewID   string         `json:"new_id"`
	Files   []exportResult `json:"files"`
}

var transferCmd = &cobra.Command{
	Use:   "transfer <source-file> <contact-id> <target-file>",
	Short: "Move a whole contact to another file",
	Long: `Move a whole contact from one vCard file to another.

The card keeps its wire text. It may get a new id in the target file when the
id is already taken there. Both files are saved.`,
	Args: cobra.ExactArgs(3),
	RunE: runTransfer,
}

func init() {
	rootCmd.AddCommand(transferCmd)
}

func runTransfer(cmd *cobra.Command, args []string) error {
	src, contactID, dst := args[0], args[1], args[2]

	b, cols, err := loadBoard(cmd.Context(), []string{src, dst})
	if err != nil {
		return handleErr(err, ErrFileReadError, "")
	}
	from, to := cols[0], cols[1]
	if from.ID() == to.ID() {
		return handleErrorMsg(ErrInvalidInput, "source and target are the same file", "")
	}

	newID, err := b.TransferContact(from.ID(), to.ID(), contactID)
	if err != nil {
		return handleErr(err, "", "Run 'cardboard show <file>' to list contact ids")
	}

	res := transferResult{Contact: contactID, NewID: newID}
	for _, col := range cols {
		saved, err := saveColumn(b, col, "")
		if err != nil {
			return handleErr(err, ErrFileWriteError, "")
		}
		res.Files = append(res.Files, saved)
	}

	if isJSONOutput() {
		outputSuccess(res, nil)
		return nil
	}
	fmt.Println(ui.Successf("Moved %s to %s", ui.AccentBold.Render(contactID), ui.FilePath(to.Path)))
	if newID != contactID {
		fmt.Println(ui.Hint("  now known as " + newID))
	}
	return nil
}
