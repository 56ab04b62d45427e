package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"gopkg.in/ini.v1"
)

type CommandLineArguments struct {
	ConfigFileLocation string
	LogFileLocation    string
	DatabaseFileName   string
	MetricsFileName    string
	ShellExecutable    string
	Debug              bool
	PrettyLogging      bool
	Offline            bool
	DisableJournal     bool
}

type Config struct {
	CommandLineArguments *CommandLineArguments
}

func New(cliArgs *CommandLineArguments) Config {
	return Config{CommandLineArguments: cliArgs}
}

// DefaultDataDir is where logs and the journal live unless configured otherwise.
func DefaultDataDir() string {
	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "netswitch")
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".netswitch"
	}

	return filepath.Join(homeDir, ".netswitch")
}

// BindFlags registers the persistent flags and fills cliArgs with their defaults.
func BindFlags(flags *pflag.FlagSet, cliArgs *CommandLineArguments) {
	dataDir := DefaultDataDir()

	flags.StringVarP(&cliArgs.ConfigFileLocation, "config", "c", "", "ini configuration file")
	flags.StringVar(&cliArgs.LogFileLocation, "logFile", filepath.Join(dataDir, "netswitch.log"), "log file used by netswitch")
	flags.StringVar(&cliArgs.DatabaseFileName, "dbFileName", filepath.Join(dataDir, "journal.db"), "sqlite file the operation journal is kept in")
	flags.StringVar(&cliArgs.MetricsFileName, "metricsFile", "", "write prometheus metrics in textfile format to this path on exit")
	flags.StringVar(&cliArgs.ShellExecutable, "shell", "powershell", "powershell executable used to query and toggle adapters")
	flags.BoolVar(&cliArgs.Debug, "debug", false, "sets the log level to debug")
	flags.BoolVar(&cliArgs.PrettyLogging, "prettyLogging", false, "also write human readable logs to stderr")
	flags.BoolVar(&cliArgs.Offline, "offline", false, "use a simulated set of adapters instead of the operating system")
	flags.BoolVar(&cliArgs.DisableJournal, "noJournal", false, "do not record operations in the journal")
}

// LoadFile applies values from an ini file to every setting whose flag was
// not given explicitly on the command line.
func LoadFile(path string, flags *pflag.FlagSet, cliArgs *CommandLineArguments) error {
	file, err := ini.Load(path)
	if err != nil {
		return errors.Wrapf(err, "failed to load config file %s", path)
	}

	changed := func(name string) bool {
		flag := flags.Lookup(name)
		return flag != nil && flag.Changed
	}

	setString := func(flagName string, section string, key string, target *string) {
		if changed(flagName) || !file.Section(section).HasKey(key) {
			return
		}
		*target = file.Section(section).Key(key).String()
	}

	var parseErr error
	setBool := func(flagName string, section string, key string, target *bool) {
		if changed(flagName) || !file.Section(section).HasKey(key) {
			return
		}
		value, err := file.Section(section).Key(key).Bool()
		if err != nil {
			parseErr = multierr.Append(parseErr, errors.Wrapf(err, "[%s] %s", section, key))
			return
		}
		*target = value
	}

	setString("logFile", "logging", "file", &cliArgs.LogFileLocation)
	setBool("debug", "logging", "debug", &cliArgs.Debug)
	setBool("prettyLogging", "logging", "pretty", &cliArgs.PrettyLogging)
	setString("shell", "shell", "executable", &cliArgs.ShellExecutable)
	setString("dbFileName", "journal", "database", &cliArgs.DatabaseFileName)
	setBool("noJournal", "journal", "disabled", &cliArgs.DisableJournal)
	setString("metricsFile", "metrics", "textfile", &cliArgs.MetricsFileName)

	return parseErr
}

// Validate reports every invalid setting at once.
func Validate(cliArgs *CommandLineArguments) error {
	var err error

	if strings.TrimSpace(cliArgs.ShellExecutable) == "" {
		err = multierr.Append(err, errors.New("shell executable must not be empty"))
	}

	if strings.TrimSpace(cliArgs.LogFileLocation) == "" {
		err = multierr.Append(err, errors.New("log file location must not be empty"))
	}

	if !cliArgs.DisableJournal && strings.TrimSpace(cliArgs.DatabaseFileName) == "" {
		err = multierr.Append(err, errors.New("journal database file must not be empty unless the journal is disabled"))
	}

	return err
}

func (cliArgs CommandLineArguments) String() string {
	return fmt.Sprintf(
		"config=%q logFile=%q dbFileName=%q metricsFile=%q shell=%q debug=%t prettyLogging=%t offline=%t noJournal=%t",
		cliArgs.ConfigFileLocation, cliArgs.LogFileLocation, cliArgs.DatabaseFileName, cliArgs.MetricsFileName,
		cliArgs.ShellExecutable, cliArgs.Debug, cliArgs.PrettyLogging, cliArgs.Offline, cliArgs.DisableJournal,
	)
}
