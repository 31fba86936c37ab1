package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cardboard/internal/board"
	"github.com/aidanlsb/cardboard/internal/ui"
	"github.com/aidanlsb/cardboard/internal/vcard"
)

var (
	moveFrom       string
	moveTo         string
	moveProperty   string
	moveValue      string
	moveTargetFile string
)

type moveResult struct {
	Property string         `json:"property"`
	Value    string         `json:"value"`
	From     string         `json:"from"`
	To       string         `json:"to"`
	Files    []exportResult `json:"files"`
}

var moveCmd = &cobra.Command{
	Use:   "move <file>",
	Short: "Move one property from a contact to another",
	Long: `Move one property from a contact to another.

The property is identified by its name and its displayed value, as printed by
'cardboard show --contact'. It is appended to the target card just before its
END line. The target may live in another file given with --target-file; every
changed file is saved.

Examples:
  cardboard move work.vcf --from john-smith --to jane-doe --property TEL --value 555-1234
  cardboard move work.vcf --from john-smith --to john-smith --target-file home.vcf --property EMAIL --value john@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().StringVar(&moveFrom, "from", "", "Source contact id")
	moveCmd.Flags().StringVar(&moveTo, "to", "", "Target contact id")
	moveCmd.Flags().StringVar(&moveProperty, "property", "", "Property name, e.g. TEL")
	moveCmd.Flags().StringVar(&moveValue, "value", "", "Displayed value of the property")
	moveCmd.Flags().StringVar(&moveTargetFile, "target-file", "", "File holding the target contact (default: the source file)")
	_ = moveCmd.MarkFlagRequired("from")
	_ = moveCmd.MarkFlagRequired("to")
	_ = moveCmd.MarkFlagRequired("property")
	_ = moveCmd.MarkFlagRequired("value")
}

func runMove(cmd *cobra.Command, args []string) error {
	name, ok := vcard.LookupPropertyName(moveProperty)
	if !ok {
		return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("unknown property '%s'", moveProperty), "Vendor properties must start with X-")
	}

	paths := append([]string(nil), args...)
	if moveTargetFile != "" {
		paths = append(paths, moveTargetFile)
	}
	b, cols, err := loadBoard(cmd.Context(), paths)
	if err != nil {
		return handleErr(err, ErrFileReadError, "")
	}

	source := cols[0]
	target := cols[len(cols)-1]
	if err := b.MoveProperty(source.ID(), moveFrom, target.ID(), moveTo, name, moveValue); err != nil {
		return handleErr(err, "", "Run 'cardboard show <file> --contact <id>' to see property values")
	}

	changed := []*board.Column{source}
	if target.ID() != source.ID() {
		changed = append(changed, target)
	}
	res := moveResult{Property: string(name), Value: moveValue, From: moveFrom, To: moveTo}
	for _, col := range changed {
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
	fmt.Println(ui.Successf("Moved %s %s from %s to %s",
		name, ui.Bold.Render(moveValue), ui.AccentBold.Render(moveFrom), ui.AccentBold.Render(moveTo)))
	for _, f := range res.Files {
		fmt.Println(ui.Hint("  saved " + f.File))
	}
	return nil
}
