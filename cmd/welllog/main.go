// Package main is the entry point for the welllog CLI, the batch-oriented
// front end for LAS/CSV well-log conversion.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the welllog CLI.
var rootCmd = &cobra.Command{
	Use:   "welllog",
	Short: "Convert well-log files between LAS and CSV",
	Long: `welllog converts well-log files between the Log ASCII Standard (LAS)
format and CSV, and builds depth-indexed curve charts.

Each operation is a subcommand: las2csv, csv2las, and plot. Conversions are
stateless; every invocation is a pure function of its input files.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./welllog.yaml or ~/.config/welllog/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("welllog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "welllog"))
		}
	}

	viper.SetEnvPrefix("WELLLOG")
	viper.AutomaticEnv()

	viper.SetDefault("depth_unit", "m")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
