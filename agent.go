package main

import (
	"time"

	"netswitch/config"
	"netswitch/errdefs"
	"netswitch/metrics"
	"netswitch/network"
	"netswitch/persistence"
	"netswitch/privilege"
	"netswitch/shell"

	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

type Agent struct {
	Config  *config.Config
	Manager *network.Manager
	Journal persistence.Journal
	Metrics *metrics.Recorder
}

func NewAgent(cfg *config.Config) (*Agent, error) {
	cliArgs := cfg.CommandLineArguments

	recorder, err := metrics.NewRecorder()
	if err != nil {
		return nil, err
	}

	var launcher shell.Launcher
	var checker privilege.Checker
	if cliArgs.Offline {
		log.Info().Msg("offline mode, using simulated adapters")
		launcher = network.NewDummyLauncher()
		checker = privilege.Static(true)
	} else {
		launcher = shell.NewExecLauncher()
		checker = privilege.NewProcess()
	}

	var journal persistence.Journal
	if cliArgs.DisableJournal {
		journal = persistence.NewDummyJournal()
	} else {
		journal, err = persistence.NewSQLiteDb(cliArgs.DatabaseFileName)
		if err != nil {
			return nil, err
		}
	}

	err = journal.Init()
	if err != nil {
		return nil, multierr.Append(err, journal.Close())
	}

	manager := network.NewManager(metrics.InstrumentLauncher(launcher, recorder), checker, cliArgs.ShellExecutable)

	return &Agent{
		Config:  cfg,
		Manager: manager,
		Journal: journal,
		Metrics: recorder,
	}, nil
}

// Run executes a mutating operation and records its outcome in the journal
// and the metrics. A journal failure is logged but never masks the result.
func (agent *Agent) Run(operation string, target string, fn func() error) error {
	start := time.Now()
	err := fn()

	outcome := persistence.OutcomeOK
	message := ""
	if err != nil {
		outcome = string(errdefs.KindOf(err))
		if outcome == "" {
			outcome = string(errdefs.KindUnknown)
		}
		message = err.Error()
	}

	agent.record(operation, target, outcome, message, time.Since(start))

	return err
}

// Decline records an operation the user chose not to run.
func (agent *Agent) Decline(operation string, target string) {
	agent.record(operation, target, persistence.OutcomeDeclined, "declined at confirmation prompt", 0)
}

func (agent *Agent) record(operation string, target string, outcome string, message string, duration time.Duration) {
	agent.Metrics.ObserveOperation(operation, outcome)

	_, err := agent.Journal.Record(persistence.JournalEntry{
		Operation: operation,
		Target:    target,
		Outcome:   outcome,
		Message:   message,
		Duration:  duration,
	})
	if err != nil {
		log.Error().Stack().Err(err).Msgf("failed to record %s in the journal", operation)
	}
}

// Close writes the metrics textfile, when configured, and releases the journal.
func (agent *Agent) Close() error {
	var err error

	if path := agent.Config.CommandLineArguments.MetricsFileName; path != "" {
		err = multierr.Append(err, agent.Metrics.WriteTextfile(path))
	}

	return multierr.Append(err, agent.Journal.Close())
}
