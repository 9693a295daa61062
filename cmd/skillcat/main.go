package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aa89227/skillcat/pkg/logger"
)

func init() {
	viper.SetEnvPrefix("SKILLCAT")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillcat")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skillcat",
	Short: "Load, validate, and index skill plugin catalogs",
	Long: `skillcat inspects directories of skill plugins: bundles of markdown
skill documents with YAML frontmatter plus a per-plugin manifest. It loads
the catalog, reports invalid entries, and maintains the marketplace index.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
		os.Exit(1)
	},
}

// bindFlags binds the persistent flags to their viper keys
func bindFlags(fs *pflag.FlagSet) {
	viper.BindPFlag("root", fs.Lookup("root"))
	viper.BindPFlag("log_level", fs.Lookup("log-level"))
	viper.BindPFlag("log_format", fs.Lookup("log-format"))
	viper.BindPFlag("ignore", fs.Lookup("ignore"))
}

func main() {
	fs := rootCmd.PersistentFlags()
	fs.StringP("root", "r", ".", "Catalog root directory")
	fs.String("log-level", "warning", "Log level (debug, info, warning, error)")
	fs.String("log-format", "text", "Log format (text, json)")
	fs.StringSlice("ignore", nil, "Glob patterns for catalog entries to skip")
	bindFlags(fs)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
