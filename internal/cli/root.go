// internal/cli/root.go
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/maketools/resloc"
	"github.com/maketools/resloc/pkg/core"
)

var (
	cfgFile    string
	layoutName string
	includes   []string
	debug      bool
	config     *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "resloc",
	Short: "Relocatable resource locator",
	Long: `resloc - Relocatable resource locator

Discovers where a packaged tool's bundled resource directory lives,
relative to the running executable, and builds the resource search
path. Installed trees can be moved or repackaged without rebuilding.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/resloc/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&layoutName, "layout", "", "install layout (res, share, flat)")
	rootCmd.PersistentFlags().StringArrayVarP(&includes, "include", "I", nil, "extra search directory, highest priority (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(unpackCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if layoutName != "" {
		config.Layout = layoutName
	}
	if len(includes) > 0 {
		config.UserIncludes = append(includes, config.UserIncludes...)
	}
	if debug {
		config.Debug = true
	}
}

func newLocator() (*resloc.Locator, error) {
	return resloc.NewLocator(config)
}

func cliLogger() *log.Logger {
	if config != nil && config.Debug {
		return log.New(os.Stdout, "[RESLOC] ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}
