package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rong/internal/config"
)

var configResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to ~/.rong/rong.yaml
or ./configs/rong.yaml to customize it.

With --resolved, prints the configuration Rong would actually use after
searching config files and applying flags.`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !configResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger := newLogger("rong config")
	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		logger.Fatal("cannot encode config", "error", err)
	}
	fmt.Print(string(out))
}
