package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/htmlprep/internal/output"
	"github.com/jmylchreest/htmlprep/pkg/preprocess"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report tag, class and id statistics for a document",
	Long: `Analyze scans a document with the fixed pattern set and reports tag
frequencies, class and id usage, headings and paragraph counts. The
document is not modified.

Examples:
  htmlprep analyze -u "https://example.com"
  htmlprep analyze -f page.html --format json
  cat page.html | htmlprep analyze`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	addInputFlags(analyzeCmd)
	analyzeCmd.Flags().String("format", "text", "output format: text, json, yaml")
	analyzeCmd.Flags().Int("top", 10, "number of entries in frequency rankings")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	p, err := loadDocument(cmd, nil)
	if err != nil {
		logError("%v", err)
		return err
	}

	report, err := p.Analyze()
	if err != nil {
		logError("%v", err)
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	top, _ := cmd.Flags().GetInt("top")

	if format == "text" {
		renderReport(report, top)
		return nil
	}

	w, err := output.NewWriter(os.Stdout, output.Format(format))
	if err != nil {
		logError("%v", err)
		return err
	}
	if err := w.Write(report); err != nil {
		return err
	}
	return w.Close()
}

// renderReport prints the human-readable structure summary.
func renderReport(r *preprocess.Report, top int) {
	fmt.Printf("Total tags:  %d\n", r.TotalTags)
	fmt.Printf("Unique tags: %d\n", r.UniqueTags)

	if len(r.Tags) > 0 {
		fmt.Println("\nMost common tags:")
		for _, tc := range r.TopTags(top) {
			fmt.Printf("  <%s>: %d\n", tc.Name, tc.Count)
		}
	}

	if len(r.Classes) > 0 {
		fmt.Printf("\nUnique classes: %d\n", len(r.Classes))
		names := make([]string, 0, top)
		for _, tc := range r.TopClasses(top) {
			names = append(names, tc.Name)
		}
		fmt.Printf("Top classes: %s\n", strings.Join(names, ", "))
	}

	if len(r.IDs) > 0 {
		fmt.Printf("\nIDs: %d\n", len(r.IDs))
	}

	fmt.Printf("\nHeadings: %d\n", len(r.Headings))
	for i, h := range r.Headings {
		if i >= top {
			break
		}
		text := h.Text
		if len(text) > 60 {
			text = text[:60] + "..."
		}
		fmt.Printf("  <h%d>: %s\n", h.Level, text)
	}

	fmt.Printf("\nParagraphs: %d\n", len(r.Paragraphs))
}
