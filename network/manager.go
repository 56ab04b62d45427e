package network

import (
	"fmt"

	"netswitch/errdefs"
	"netswitch/privilege"
	"netswitch/shell"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const DefaultShell = "powershell"

// Manager discovers the wired and wireless adapter and switches between them.
// Every call re-queries the OS; nothing is cached and there is no locking, so
// callers must not issue overlapping calls.
type Manager struct {
	launcher  shell.Launcher
	privilege privilege.Checker
	shell     string
}

func NewManager(launcher shell.Launcher, checker privilege.Checker, shellExecutable string) *Manager {
	if shellExecutable == "" {
		shellExecutable = DefaultShell
	}

	return &Manager{
		launcher:  launcher,
		privilege: checker,
		shell:     shellExecutable,
	}
}

// IsAdmin never fails: a privilege query that errors counts as not elevated.
func (m *Manager) IsAdmin() (elevated bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("panic", fmt.Sprint(r)).Msg("privilege check panicked, treating process as not elevated")
			elevated = false
		}
	}()

	ok, err := m.privilege.IsElevated()
	if err != nil {
		log.Error().Stack().Err(err).Msg("failed to check administrator privileges")
		return false
	}

	return ok
}

func (m *Manager) GetAdapters() (adapters []Adapter, err error) {
	defer func() {
		if r := recover(); r != nil {
			adapters = nil
			err = errdefs.Unknown(errors.Errorf("adapter query panicked: %v", r))
			log.Error().Stack().Err(err).Msg("unexpected error while querying adapters")
		}
	}()

	result, err := m.launcher.Launch(powershellCommand(m.shell, listAdaptersScript))
	if err != nil {
		log.Error().Stack().Err(err).Msg("failed to run adapter query")
		return nil, errdefs.QueryFailed(err, result.Stderr)
	}

	if result.ExitCode != 0 {
		err = errors.Errorf("adapter query exited with status %d", result.ExitCode)
		log.Error().Err(err).Str("stderr", result.Stderr).Msg("adapter query failed")
		return nil, errdefs.QueryFailed(err, result.Stderr)
	}

	records, err := decodeAdapterRecords(result.Stdout)
	if err != nil {
		log.Error().Stack().Err(err).Msg("failed to parse adapter query output")
		return nil, errdefs.ParseFailed(err)
	}

	adapters = make([]Adapter, 0, len(records))
	for _, record := range records {
		adapters = append(adapters, record.toAdapter())
	}

	log.Debug().Int("count", len(adapters)).Msg("queried network adapters")

	return adapters, nil
}

func (m *Manager) FindEthernetAdapter() (*Adapter, error) {
	return m.findAdapter(TypeEthernet)
}

func (m *Manager) FindWifiAdapter() (*Adapter, error) {
	return m.findAdapter(TypeWiFi)
}

func (m *Manager) findAdapter(adapterType AdapterType) (*Adapter, error) {
	adapters, err := m.GetAdapters()
	if err != nil {
		return nil, err
	}

	return FirstOfType(adapters, adapterType), nil
}

func (m *Manager) EnableAdapter(name string) error {
	return m.setAdapterEnabled(name, true, m.IsAdmin())
}

func (m *Manager) DisableAdapter(name string) error {
	return m.setAdapterEnabled(name, false, m.IsAdmin())
}

// setAdapterEnabled takes the already checked elevation state so the gate is
// evaluated once per operation, before any command is launched.
func (m *Manager) setAdapterEnabled(name string, enable bool, elevated bool) error {
	action := "disable"
	if enable {
		action = "enable"
	}

	if !elevated {
		err := errdefs.PermissionDenied(name)
		log.Error().Err(err).Msgf("refusing to %s adapter without administrator privileges", action)
		return err
	}

	result, err := m.launcher.Launch(powershellCommand(m.shell, setAdapterScript(name, enable)))
	if err != nil {
		log.Error().Stack().Err(err).Msgf("failed to %s adapter '%s'", action, name)
		return errdefs.CommandFailed(name, err, result.Stderr)
	}

	if result.ExitCode != 0 {
		err = errors.Errorf("%s exited with status %d", action, result.ExitCode)
		log.Error().Err(err).Str("stderr", result.Stderr).Msgf("failed to %s adapter '%s'", action, name)
		return errdefs.CommandFailed(name, err, result.Stderr)
	}

	log.Info().Msgf("%sd adapter '%s'", action, name)

	return nil
}

// SwitchToEthernet disables the wifi adapter, then enables the ethernet adapter.
func (m *Manager) SwitchToEthernet() error {
	return m.switchTo(TypeEthernet)
}

// SwitchToWifi disables the ethernet adapter, then enables the wifi adapter.
func (m *Manager) SwitchToWifi() error {
	return m.switchTo(TypeWiFi)
}

// switchTo never enables before disabling, so at most one adapter is up at a
// time. A failed enable after a successful disable is not rolled back.
func (m *Manager) switchTo(target AdapterType) error {
	ethernet, err := m.FindEthernetAdapter()
	if err != nil {
		return err
	}

	wifi, err := m.FindWifiAdapter()
	if err != nil {
		return err
	}

	if ethernet == nil {
		return errdefs.AdapterNotFound(string(TypeEthernet))
	}

	if wifi == nil {
		return errdefs.AdapterNotFound(string(TypeWiFi))
	}

	enable, disable := ethernet, wifi
	if target == TypeWiFi {
		enable, disable = wifi, ethernet
	}

	log.Info().Msgf("switching to %s (disable '%s', enable '%s')", target, disable.Name, enable.Name)

	elevated := m.IsAdmin()

	err = m.setAdapterEnabled(disable.Name, false, elevated)
	if err != nil {
		return err
	}

	err = m.setAdapterEnabled(enable.Name, true, elevated)
	if err != nil {
		log.Warn().Msgf("'%s' stays disabled after the failed switch, no adapter is active", disable.Name)
		return err
	}

	log.Info().Msgf("switched to %s", target)

	return nil
}
