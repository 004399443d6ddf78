package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/htmlprep/internal/output"
	"github.com/jmylchreest/htmlprep/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			w, err := output.NewWriter(os.Stdout, output.FormatJSON)
			if err != nil {
				return err
			}
			if err := w.Write(version.Get()); err != nil {
				return err
			}
			return w.Close()
		}
		fmt.Println(version.Full())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("json", false, "output as JSON")
}
