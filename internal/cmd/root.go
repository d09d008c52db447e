package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	outputFmt string
	chartsDir string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "quakescope",
	Short: "Quakescope — earthquake dataset overview",
	Long: `Quakescope loads earthquake datasets (CSV), prints summary statistics,
and renders exploratory charts. It can also fetch fresh events from the
USGS catalog and serve the report over HTTP with live reload.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.quakescope.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
	rootCmd.PersistentFlags().StringVar(&chartsDir, "charts-dir", "", "directory for rendered chart PNGs (default: charts)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".quakescope")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("quakescope")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// chartsDirSetting resolves the charts directory: flag, then config file,
// then the default.
func chartsDirSetting() string {
	if chartsDir != "" {
		return chartsDir
	}
	if v := viper.GetString("charts_dir"); v != "" {
		return v
	}
	return "charts"
}
