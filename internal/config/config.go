// Package config loads docxreport settings from YAML files.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/hordu-ma/docxreport/pkg/docxreport"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "docxreport"

	// DefaultLogLevel is used when neither file nor flags set a level.
	DefaultLogLevel = "info"
)

// Config holds the settings of one invocation.
type Config struct {
	// Input is the JSON input path.
	Input string `yaml:"input"`
	// Output is the .docx output path.
	Output string `yaml:"output"`
	// Markdown is an optional Markdown companion path.
	Markdown string `yaml:"markdown,omitempty"`
	// Workbook is an optional xlsx companion path.
	Workbook string `yaml:"xlsx,omitempty"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level,omitempty"`
	// LogFile, when set, receives a copy of the log output.
	LogFile string `yaml:"log_file,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:    docxreport.DefaultInputPath,
		Output:   docxreport.DefaultOutputPath,
		LogLevel: DefaultLogLevel,
	}
}

// Merge overrides c with every non-empty field of other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Input != "" {
		c.Input = other.Input
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Markdown != "" {
		c.Markdown = other.Markdown
	}
	if other.Workbook != "" {
		c.Workbook = other.Workbook
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
}

// Validate checks that both paths are set.
func (c *Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}
	if c.Output == "" {
		return ErrNoOutput
	}
	return nil
}

// Options converts the configuration into generation options.
func (c *Config) Options() docxreport.Options {
	return docxreport.Options{
		MarkdownPath: c.Markdown,
		WorkbookPath: c.Workbook,
	}
}

// XDGConfigDir returns the XDG config directory for docxreport.
// On Linux: ~/.config/docxreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
