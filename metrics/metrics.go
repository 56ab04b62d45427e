package metrics

import (
	"time"

	"netswitch/shell"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

const (
	ResultOK      = "ok"
	ResultNonZero = "nonzero"
	ResultError   = "error"
)

// Recorder owns a private registry so a process only ever exports its own
// series, never the default Go collectors.
type Recorder struct {
	registry *prometheus.Registry

	ShellCommands  *prometheus.CounterVec
	ShellDurations prometheus.Histogram
	Operations     *prometheus.CounterVec
}

func NewRecorder() (*Recorder, error) {
	registry := prometheus.NewRegistry()

	shellCommands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netswitch_shell_commands_total",
		Help: "Shell commands launched, labeled by result (ok, nonzero, error).",
	}, []string{"result"})

	shellDurations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "netswitch_shell_command_duration_seconds",
		Help:    "Wall time of launched shell commands in seconds.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})

	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "netswitch_operations_total",
		Help: "Adapter operations, labeled by operation and outcome.",
	}, []string{"operation", "outcome"})

	for _, collector := range []prometheus.Collector{shellCommands, shellDurations, operations} {
		err := registry.Register(collector)
		if err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return &Recorder{
		registry:       registry,
		ShellCommands:  shellCommands,
		ShellDurations: shellDurations,
		Operations:     operations,
	}, nil
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

func (r *Recorder) ObserveOperation(operation string, outcome string) {
	if r == nil {
		return
	}
	r.Operations.WithLabelValues(operation, outcome).Inc()
}

// WriteTextfile writes every series in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, r.registry)
	if err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}

	log.Debug().Msgf("wrote metrics to %s", path)

	return nil
}

type instrumentedLauncher struct {
	next     shell.Launcher
	recorder *Recorder
}

// InstrumentLauncher counts and times every command launched through next.
func InstrumentLauncher(next shell.Launcher, recorder *Recorder) shell.Launcher {
	if recorder == nil {
		return next
	}
	return instrumentedLauncher{next: next, recorder: recorder}
}

func (il instrumentedLauncher) Launch(cmd shell.Command) (shell.Result, error) {
	start := time.Now()
	result, err := il.next.Launch(cmd)
	il.recorder.ShellDurations.Observe(time.Since(start).Seconds())

	outcome := ResultOK
	if err != nil {
		outcome = ResultError
	} else if result.ExitCode != 0 {
		outcome = ResultNonZero
	}
	il.recorder.ShellCommands.WithLabelValues(outcome).Inc()

	return result, err
}
