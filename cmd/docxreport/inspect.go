package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hordu-ma/docxreport/pkg/docxreport/docx"
	"github.com/hordu-ma/docxreport/pkg/docxreport/output"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var (
		asJSON bool
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE.docx",
		Short: "Print the headings, paragraphs and tables of a .docx document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args[0], asJSON, pretty)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the outline as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func runInspect(w io.Writer, path string, asJSON, pretty bool) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	outline, err := docx.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if asJSON {
		data, err := output.ToJSON(outline, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	writeOutline(w, outline)
	return nil
}

// writeOutline prints one line per block: index, style, text. Table rows follow
// their block line, cells separated by " | ".
func writeOutline(w io.Writer, outline *docx.Outline) {
	if outline.Title != "" {
		fmt.Fprintf(w, "title: %s\n", outline.Title)
	}
	for i, b := range outline.Blocks {
		style := b.Style
		if style == "" {
			style = "-"
		}
		switch b.Kind {
		case docx.KindTable:
			fmt.Fprintf(w, "%3d  %-10s table %d rows\n", i+1, style, len(b.Rows))
			for _, row := range b.Rows {
				fmt.Fprintf(w, "     | %s |\n", strings.Join(row, " | "))
			}
		default:
			text := strings.ReplaceAll(b.Text, "\n", `\n`)
			if b.Alignment != docx.AlignDefault {
				text += fmt.Sprintf("  [%s]", b.Alignment)
			}
			fmt.Fprintf(w, "%3d  %-10s %s\n", i+1, style, text)
		}
	}
}
