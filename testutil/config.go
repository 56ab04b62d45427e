package testutil

import (
	"path/filepath"

	"netswitch/config"
)

// DefaultTestConfig returns an offline configuration whose files all live in dir
func DefaultTestConfig(dir string) *config.Config {
	return &config.Config{
		CommandLineArguments: &config.CommandLineArguments{
			LogFileLocation:  filepath.Join(dir, "netswitch.log"),
			DatabaseFileName: filepath.Join(dir, "journal.db"),
			ShellExecutable:  "powershell",
			Offline:          true,
			Debug:            true,
		},
	}
}

// TestConfigBuilder provides a fluent interface for building test configs
type TestConfigBuilder struct {
	config *config.Config
}

// NewTestConfigBuilder creates a new builder with default values
func NewTestConfigBuilder(dir string) *TestConfigBuilder {
	return &TestConfigBuilder{
		config: DefaultTestConfig(dir),
	}
}

// WithOfflineMode sets the offline mode flag
func (b *TestConfigBuilder) WithOfflineMode(offline bool) *TestConfigBuilder {
	b.config.CommandLineArguments.Offline = offline
	return b
}

// WithJournal enables or disables the operation journal
func (b *TestConfigBuilder) WithJournal(enabled bool) *TestConfigBuilder {
	b.config.CommandLineArguments.DisableJournal = !enabled
	return b
}

// WithMetricsFile sets the textfile metrics are written to
func (b *TestConfigBuilder) WithMetricsFile(path string) *TestConfigBuilder {
	b.config.CommandLineArguments.MetricsFileName = path
	return b
}

// WithShell sets the shell executable
func (b *TestConfigBuilder) WithShell(executable string) *TestConfigBuilder {
	b.config.CommandLineArguments.ShellExecutable = executable
	return b
}

// Build returns the configured config
func (b *TestConfigBuilder) Build() *config.Config {
	return b.config
}
