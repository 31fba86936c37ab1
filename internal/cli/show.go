package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/cardboard/internal/board"
	"github.com/aidanlsb/cardboard/internal/ui"
	"github.com/aidanlsb/cardboard/internal/view"
)

var (
	showYAML     bool
	showRaw      bool
	showContacts []string
)

var showCmd = &cobra.Command{
	Use:   "show <file>...",
	Short: "Show the contacts of one or more vCard files",
	Long: `Show the contacts of one or more vCard files, one column per file.

Without --contact the board overview is printed: every card's display name,
subtitle and identifier. With --contact the named cards are rendered in full.

Examples:
  cardboard show work.vcf home.vcf
  cardboard show work.vcf --contact john-smith
  cardboard show work.vcf --yaml
  cardboard show work.vcf --raw`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "Print the card projections as YAML")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the exported vCard text")
	showCmd.Flags().StringSliceVarP(&showContacts, "contact", "c", nil, "Render these contact ids in full")
	showCmd.MarkFlagsMutuallyExclusive("yaml", "raw")
}

func runShow(cmd *cobra.Command, args []string) error {
	b, cols, err := loadBoard(cmd.Context(), args)
	if err != nil {
		return handleErr(err, ErrFileReadError, "")
	}

	if showRaw {
		return printRaw(b, cols)
	}

	views, warnings, count := projectColumns(cols)
	if len(showContacts) > 0 {
		if views, err = selectCards(views, showContacts); err != nil {
			return handleErr(err, "", "Run 'cardboard show <file>' to list contact ids")
		}
	}

	if isJSONOutput() {
		outputSuccessWithWarnings(views, warnings, &Meta{Count: count})
		return nil
	}

	if showYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return handleError(ErrInternal, err, "")
		}
		return enc.Close()
	}

	if len(showContacts) > 0 {
		return printCards(views)
	}

	fmt.Println(ui.RenderBoard(ui.NewDisplayContext(), views))
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Println(ui.Warningf("%d unhandled %s, run 'cardboard check' for details",
			len(warnings), pluralize("line", len(warnings))))
	}
	return nil
}

func projectColumns(cols []*board.Column) ([]view.Column, []Warning, int) {
	placeholder := getConfig().Photo.Placeholder
	views := make([]view.Column, 0, len(cols))
	var warnings []Warning
	count := 0
	for _, col := range cols {
		v := view.ProjectDocument(col.Document, placeholder)
		views = append(views, v)
		warnings = append(warnings, warningsFrom(col.Path, col.Document.Warnings())...)
		count += len(v.Cards)
	}
	return views, warnings, count
}

// selectCards keeps only the cards named by ids, dropping columns left empty.
func selectCards(views []view.Column, ids []string) ([]view.Column, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var out []view.Column
	for _, v := range views {
		var cards []view.Card
		for _, card := range v.Cards {
			if want[card.ID] {
				cards = append(cards, card)
				delete(want, card.ID)
			}
		}
		if len(cards) > 0 {
			v.Cards = cards
			out = append(out, v)
		}
	}
	for _, id := range ids {
		if want[id] {
			return nil, fmt.Errorf("%w: %s", board.ErrContactNotFound, id)
		}
	}
	return out, nil
}

func printCards(views []view.Column) error {
	width := ui.NewDisplayContext().AvailableWidth(ui.MarkdownRenderMargin)
	for _, v := range views {
		for _, card := range v.Cards {
			rendered, err := ui.RenderMarkdown(view.Markdown(card), width)
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			fmt.Print(rendered)
			fmt.Println(ui.Hint(fmt.Sprintf("  %s · %s", v.Name, card.Photo)))
		}
	}
	return nil
}

func printRaw(b *board.Board, cols []*board.Column) error {
	var files []map[string]string
	for _, col := range cols {
		text, err := b.Export(col.ID())
		if err != nil {
			return handleErr(err, ErrInternal, "")
		}
		if isJSONOutput() {
			files = append(files, map[string]string{"file": col.Path, "text": text})
			continue
		}
		if len(cols) > 1 {
			fmt.Println(ui.Header(col.Document.Name))
		}
		fmt.Print(text)
	}
	if isJSONOutput() {
		outputSuccess(files, &Meta{Count: len(files)})
	}
	return nil
}

func pluralize(singular string, count int) string {
	if count == 1 {
		return singular
	}
	return singular + "s"
}
