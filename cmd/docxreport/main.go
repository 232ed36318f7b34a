// Package main provides the CLI entry point for docxreport.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hordu-ma/docxreport/internal/config"
	"github.com/hordu-ma/docxreport/internal/logger"
	"github.com/hordu-ma/docxreport/pkg/docxreport"
	"github.com/spf13/cobra"
)

var (
	outputPath   string
	markdownPath string
	xlsxPath     string
	configPath   string
	logLevel     string
	logFile      string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// generation failures are already logged by docxreport.Generate
		if _, ok := docxreport.KindOf(err); !ok {
			logger.Log.Error(err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docxreport [input.json]",
		Short: "Render an employee report JSON file into a .docx document",
		Long: `docxreport reads a report record (title, employee profile, project list)
from a JSON file and writes a formatted Word document. The same content can
also be written as Markdown and as an xlsx workbook.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output .docx path (default: "+docxreport.DefaultOutputPath+")")
	rootCmd.Flags().StringVar(&markdownPath, "markdown", "", "Also write the report as Markdown to this path")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write employee and project data as an xlsx workbook to this path")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./"+config.DefaultConfigFile+" or XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append log output to this file")

	rootCmd.AddCommand(newInspectCmd())

	return rootCmd
}

func run(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	closeLog, err := logger.InitLogger(cmd.OutOrStdout(), cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		err = closeLogFile(err, closeLog)
	}()

	opts := cfg.Options()
	opts.Logger = logger.Log

	if _, err := docxreport.Generate(cfg.Input, cfg.Output, opts); err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	return nil
}

// closeLogFile releases the log file and joins a close failure onto err.
func closeLogFile(err error, closeLog func() error) error {
	if cerr := closeLog(); cerr != nil {
		return errors.Join(err, fmt.Errorf("failed to close log file: %w", cerr))
	}
	return err
}

// loadConfig merges built-in defaults, the config file and command-line values, in that order.
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.Default()

	path := config.FindConfigFile(configPath)
	if configPath != "" && path == "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}
	if path != "" {
		fileCfg, err := config.LoadConfigFile(path)
		if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		cfg.Merge(fileCfg)
	}

	flags := &config.Config{
		Output:   outputPath,
		Markdown: markdownPath,
		Workbook: xlsxPath,
		LogLevel: logLevel,
		LogFile:  logFile,
	}
	if len(args) > 0 {
		flags.Input = args[0]
	}
	cfg.Merge(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
