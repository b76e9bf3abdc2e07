package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mamoru/ten/internal/config"
)

var flagConfigForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration after the config file and flags are applied.

Config files are searched in this order:
  --config <path>
  ~/.ten/configs/ten.yaml
  ./configs/ten.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the effective configuration to a file",
	Args:  cobra.MaximumNArgs(1),
	Run:   runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&flagConfigForce, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	data, err := yaml.Marshal(appCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := config.UserPath()
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no home directory; pass a path")
		os.Exit(1)
	}

	if _, err := os.Stat(path); err == nil && !flagConfigForce {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
		os.Exit(1)
	}

	if err := config.Save(path, appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
