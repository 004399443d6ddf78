// Package commands implements the CLI commands for htmlprep.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/htmlprep/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "htmlprep",
	Short: "Pattern-based HTML preprocessor",
	Long: `htmlprep analyzes and cleans raw HTML using pattern matching alone,
ahead of a full structural parser. It strips scripts, styles, page
chrome, comments and ad elements, decodes entities and compacts
whitespace, and reports tag/class/id statistics.

Examples:
  # Inspect the structure of a page
  htmlprep analyze -u "https://example.com"

  # Clean a page with the default pipeline
  htmlprep clean -u "https://example.com" -o cleaned.html

  # Clean a local file and drop ad elements
  htmlprep clean -f page.html --classes ad,popup --ids sidebar`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.htmlprep.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".htmlprep")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("HTMLPREP")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
