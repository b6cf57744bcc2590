package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kyaoi/termfolio/internal/app"
	"github.com/kyaoi/termfolio/internal/config"
)

// Version is set via ldflags at build time.
var Version = "dev"

var (
	cfgFile string
	style   string
	logFile string
	noMouse bool
)

var rootCmd = &cobra.Command{
	Use:   "termfolio [content-dir]",
	Short: "A personal portfolio in your terminal",
	Long: `termfolio renders a single-page portfolio (about, experience, projects,
skills and contact) in the terminal. The navigation bar follows the section
in view; click a label or press 1-6 to jump to a section.

Without a content directory the built-in portfolio is shown. A directory
holds home.md, about.md, experience.md, projects.md, skills.md and
contact.md with YAML front matter; edits are picked up live.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.ContentDir = args[0]
		}
		if cmd.Flags().Changed("style") {
			cfg.Style = style
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if noMouse {
			cfg.Mouse = false
		}
		return app.Run(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of termfolio",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "termfolio %s\n", Version)
	},
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "termfolio.yml", "config file path")
	rootCmd.Flags().StringVar(&style, "style", "", "glamour style (dark, light, dracula, tokyo-night, ...)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse support")
	rootCmd.AddCommand(versionCmd)
}
