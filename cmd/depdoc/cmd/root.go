// Package cmd provides the CLI commands for depdoc.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbmrq/depdoc/internal/config"
	"github.com/dbmrq/depdoc/internal/errors"
	"github.com/dbmrq/depdoc/internal/logging"
	"github.com/dbmrq/depdoc/internal/manifest"
	"github.com/dbmrq/depdoc/internal/tui"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// runTUI starts the interface. Tests replace it.
var runTUI = tui.Run

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "depdoc",
		Short: "Generate a README dependency section from package.json",
		Long: `depdoc turns a package.json into a Markdown README listing its
dependencies and development dependencies.

Paste or type a manifest, load one from disk, remove the entries you do not
want documented, then copy the result or save it as README.md. A loaded file
is watched and re-read when it changes.

Examples:
  depdoc                          # Start with an empty editor
  depdoc --file package.json      # Load and watch a manifest
  depdoc -f package.yaml -o docs  # Save README.md into docs/`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	root.Flags().StringP("file", "f", "", "Manifest to load on start (package.json or package.yaml)")
	root.Flags().StringP("config", "c", "", "Config file (default .depdoc.yaml)")
	root.Flags().StringP("out", "o", "", "Directory README.md is saved in (overrides readme.output_dir)")
	root.Flags().String("log-level", "", "Log level: debug, info, warn or error (overrides log.level)")

	root.AddCommand(newVersionCmd())
	return root
}

// runRoot loads configuration, starts logging and runs the TUI.
func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := prepare(cmd)
	if err != nil {
		return err
	}

	if err := logging.InitGlobal(opts.Config.LoggingConfig()); err != nil {
		// The TUI owns the terminal, so run without a log file rather than fail.
		cmd.PrintErrf("warning: logging disabled: %v\n", err)
	} else {
		defer func() { _ = logging.CloseGlobal() }()
	}
	logging.Info("depdoc starting",
		"version", Version,
		"file", opts.InitialFile,
		"output_dir", opts.Config.Readme.OutputDir,
	)

	if err := runTUI(opts); err != nil {
		logging.Error("tui exited with error", "error", err.Error())
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	logging.Info("depdoc exiting")
	return nil
}

// prepare turns flags and configuration into TUI options.
func prepare(cmd *cobra.Command) (tui.Options, error) {
	configPath, _ := cmd.Flags().GetString("config")
	filePath, _ := cmd.Flags().GetString("file")
	outDir, _ := cmd.Flags().GetString("out")
	logLevel, _ := cmd.Flags().GetString("log-level")

	cfg, err := config.Load(configPath)
	if err != nil {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath
		}
		return tui.Options{}, errors.ConfigParseError(path, err)
	}

	if outDir != "" {
		cfg.Readme.OutputDir = outDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return tui.Options{}, errors.Wrap(err, errors.ErrConfig, "invalid command line option")
	}

	wd, err := os.Getwd()
	if err != nil {
		return tui.Options{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	opts := tui.Options{
		Config:  cfg,
		BaseDir: wd,
	}

	if filePath != "" {
		abs, err := filepath.Abs(filePath)
		if err != nil {
			return tui.Options{}, errors.ManifestReadError(filePath, err)
		}
		// Fail before the TUI takes over the terminal.
		if _, err := manifest.ReadFile(abs); err != nil {
			return tui.Options{}, err
		}
		opts.InitialFile = abs
	}

	return opts, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("depdoc {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		var de *errors.DepdocError
		if errors.As(err, &de) {
			fmt.Fprintln(os.Stderr, de.Format())
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
