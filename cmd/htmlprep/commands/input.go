package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/htmlprep/pkg/preprocess"
)

// loadDocument builds a Preprocessor from the shared --url/--file flags.
// With neither flag set, the document is read from stdin.
func loadDocument(cmd *cobra.Command, cfg *preprocess.Config) (*preprocess.Preprocessor, error) {
	url, _ := cmd.Flags().GetString("url")
	file, _ := cmd.Flags().GetString("file")

	if url != "" && file != "" {
		return nil, fmt.Errorf("use --url or --file, not both")
	}

	if url != "" {
		return preprocess.New(cmd.Context(),
			preprocess.WithURL(url),
			preprocess.WithConfig(cfg))
	}

	var (
		data []byte
		err  error
	)
	if file != "" {
		data, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	return preprocess.New(cmd.Context(),
		preprocess.WithHTML(string(data)),
		preprocess.WithConfig(cfg))
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("url", "u", "", "URL to fetch the document from")
	cmd.Flags().StringP("file", "f", "", "path to a local HTML file (default: stdin)")
}
