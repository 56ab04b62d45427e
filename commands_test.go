package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"netswitch/network"
	"netswitch/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

// runOffline runs the CLI against the simulated adapters with every file in dir.
func runOffline(t *testing.T, dir string, stdin string, args ...string) cliResult {
	t.Helper()

	fullArgs := append([]string{
		"--offline",
		"--logFile", filepath.Join(dir, "netswitch.log"),
		"--dbFileName", filepath.Join(dir, "journal.db"),
	}, args...)

	var stdout, stderr bytes.Buffer
	code := run(fullArgs, strings.NewReader(stdin), &stdout, &stderr)

	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func history(t *testing.T, dir string) []persistence.JournalEntry {
	t.Helper()

	result := runOffline(t, dir, "", "history", "-o", "json")
	require.Equal(t, 0, result.code, result.stderr)

	var entries []persistence.JournalEntry
	require.NoError(t, json.Unmarshal([]byte(result.stdout), &entries))
	return entries
}

func TestVersionCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "netswitch 1.2.0")
	assert.Empty(t, stderr.String())
}

func TestStatusCommand(t *testing.T) {
	result := runOffline(t, t.TempDir(), "", "status")

	require.Equal(t, 0, result.code, result.stderr)
	assert.Contains(t, result.stdout, "Administrator: yes")
	assert.Contains(t, result.stdout, "Ethernet (Up) [enabled]")
	assert.Contains(t, result.stdout, "Wi-Fi (Disabled) [disabled]")
	assert.Contains(t, result.stdout, "available")
	assert.NotContains(t, result.stderr, "Warning")
}

func TestListCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		result := runOffline(t, t.TempDir(), "", "list", "-o", "json")
		require.Equal(t, 0, result.code, result.stderr)

		var adapters []network.Adapter
		require.NoError(t, json.Unmarshal([]byte(result.stdout), &adapters))
		require.Len(t, adapters, 3)
		assert.Equal(t, network.TypeEthernet, adapters[0].Type)
		assert.Equal(t, network.TypeWiFi, adapters[1].Type)
		assert.Equal(t, network.TypeUnknown, adapters[2].Type)
		assert.Equal(t, network.StatusDisconnected, adapters[2].Status)
	})

	t.Run("yaml", func(t *testing.T) {
		result := runOffline(t, t.TempDir(), "", "list", "--output", "yaml")
		require.Equal(t, 0, result.code, result.stderr)

		var adapters []network.Adapter
		require.NoError(t, yaml.Unmarshal([]byte(result.stdout), &adapters))
		require.Len(t, adapters, 3)
		assert.Equal(t, "Wi-Fi", adapters[1].Name)
	})

	t.Run("table", func(t *testing.T) {
		result := runOffline(t, t.TempDir(), "", "list")
		require.Equal(t, 0, result.code, result.stderr)

		assert.Contains(t, result.stdout, "NAME")
		assert.Contains(t, result.stdout, "Realtek PCIe GbE Family Controller")
		assert.Contains(t, result.stdout, "Bluetooth Network Connection")
	})

	t.Run("unknown format", func(t *testing.T) {
		result := runOffline(t, t.TempDir(), "", "list", "-o", "xml")
		assert.Equal(t, 1, result.code)
		assert.Contains(t, result.stderr, "unknown output format")
	})
}

func TestSwitchCommand(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		dir := t.TempDir()
		result := runOffline(t, dir, "y\n", "switch", "wifi")

		require.Equal(t, 0, result.code, result.stderr)
		assert.Contains(t, result.stdout, "Disable 'Ethernet' and enable 'Wi-Fi'? [y/N]")
		assert.Contains(t, result.stdout, "Switched to Wi-Fi.")

		entries := history(t, dir)
		require.Len(t, entries, 1)
		assert.Equal(t, "switch-wifi", entries[0].Operation)
		assert.Equal(t, persistence.OutcomeOK, entries[0].Outcome)
	})

	t.Run("declined", func(t *testing.T) {
		dir := t.TempDir()
		result := runOffline(t, dir, "n\n", "switch", "ethernet")

		require.Equal(t, 0, result.code, result.stderr)
		assert.Contains(t, result.stdout, "Disable 'Wi-Fi' and enable 'Ethernet'?")
		assert.Contains(t, result.stdout, "Aborted")

		entries := history(t, dir)
		require.Len(t, entries, 1)
		assert.Equal(t, persistence.OutcomeDeclined, entries[0].Outcome)
	})

	t.Run("empty input declines", func(t *testing.T) {
		result := runOffline(t, t.TempDir(), "", "switch", "wifi")

		require.Equal(t, 0, result.code, result.stderr)
		assert.Contains(t, result.stdout, "Aborted")
	})

	t.Run("yes skips the prompt", func(t *testing.T) {
		result := runOffline(t, t.TempDir(), "", "switch", "ethernet", "--yes")

		require.Equal(t, 0, result.code, result.stderr)
		assert.NotContains(t, result.stdout, "[y/N]")
		assert.Contains(t, result.stdout, "Switched to Ethernet.")
	})

	t.Run("invalid target", func(t *testing.T) {
		result := runOffline(t, t.TempDir(), "", "switch", "bluetooth")
		assert.Equal(t, 1, result.code)
	})
}

func TestEnableDisableCommands(t *testing.T) {
	t.Run("known adapter", func(t *testing.T) {
		result := runOffline(t, t.TempDir(), "", "disable", "Ethernet")

		require.Equal(t, 0, result.code, result.stderr)
		assert.Contains(t, result.stdout, "Disabled 'Ethernet'.")
	})

	t.Run("unknown adapter is journaled as a failure", func(t *testing.T) {
		dir := t.TempDir()
		result := runOffline(t, dir, "", "enable", "Missing")

		assert.Equal(t, 1, result.code)
		assert.Contains(t, result.stderr, "command failed for adapter 'Missing'")
		assert.Contains(t, result.stderr, "No MSFT_NetAdapter objects found")

		entries := history(t, dir)
		require.Len(t, entries, 1)
		assert.Equal(t, "enable", entries[0].Operation)
		assert.Equal(t, "Missing", entries[0].Target)
		assert.Equal(t, "CommandFailed", entries[0].Outcome)
	})
}

func TestHistoryCommand(t *testing.T) {
	t.Run("newest first with limit", func(t *testing.T) {
		dir := t.TempDir()
		require.Equal(t, 0, runOffline(t, dir, "", "enable", "Wi-Fi").code)
		require.Equal(t, 0, runOffline(t, dir, "", "disable", "Wi-Fi").code)

		result := runOffline(t, dir, "", "history", "--limit", "1", "-o", "json")
		require.Equal(t, 0, result.code, result.stderr)

		var entries []persistence.JournalEntry
		require.NoError(t, json.Unmarshal([]byte(result.stdout), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "disable", entries[0].Operation)
	})

	t.Run("empty journal", func(t *testing.T) {
		result := runOffline(t, t.TempDir(), "", "history")
		require.Equal(t, 0, result.code, result.stderr)
		assert.Contains(t, result.stdout, "No operations recorded.")
	})

	t.Run("disabled journal", func(t *testing.T) {
		result := runOffline(t, t.TempDir(), "", "--noJournal", "history")
		assert.Equal(t, 1, result.code)
		assert.Contains(t, result.stderr, "the journal is disabled")
	})

	t.Run("journal disabled from config file", func(t *testing.T) {
		dir := t.TempDir()
		configFile := filepath.Join(dir, "netswitch.ini")
		require.NoError(t, os.WriteFile(configFile, []byte("[journal]\ndisabled = true\n"), 0o644))

		result := runOffline(t, dir, "", "--config", configFile, "history")
		assert.Equal(t, 1, result.code)
		assert.Contains(t, result.stderr, "the journal is disabled")
	})
}

func TestMetricsFile(t *testing.T) {
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "netswitch.prom")

	result := runOffline(t, dir, "", "--metricsFile", metricsFile, "switch", "wifi", "--yes")
	require.Equal(t, 0, result.code, result.stderr)

	content, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `netswitch_operations_total{operation="switch-wifi",outcome="ok"} 1`)
	assert.Contains(t, string(content), `netswitch_shell_commands_total{result="ok"}`)
	assert.Contains(t, string(content), "netswitch_shell_command_duration_seconds_count")
}

func TestInvalidConfiguration(t *testing.T) {
	result := runOffline(t, t.TempDir(), "", "--shell", " ", "status")
	assert.Equal(t, 1, result.code)
	assert.Contains(t, result.stderr, "shell executable must not be empty")
}

func TestConfirm(t *testing.T) {
	for answer, expected := range map[string]bool{
		"y\n":     true,
		"YES\n":   true,
		" yes ":   true,
		"n\n":     false,
		"\n":      false,
		"":        false,
		"maybe\n": false,
	} {
		var out bytes.Buffer
		ok, err := confirm(strings.NewReader(answer), &out, "Proceed?")
		require.NoError(t, err)
		assert.Equal(t, expected, ok, "answer %q", answer)
		assert.Equal(t, "Proceed? [y/N]: ", out.String())
	}
}
