package network

import (
	"encoding/json"
	"strings"
	"sync"

	"netswitch/shell"
)

// =============================================================================
// MockLauncher - Implements shell.Launcher for testing
// =============================================================================

type MockLauncher struct {
	sync.Mutex

	// Track launched commands
	Calls []shell.Command
	// Adapter state changes in launch order, e.g. "disable:Wi-Fi"
	Operations []string

	// Configurable return values
	QueryResult shell.Result
	QueryError  error
	QueryPanic  bool
	SetResults  map[string]shell.Result
	SetErrors   map[string]error
}

func NewMockLauncher() *MockLauncher {
	return &MockLauncher{
		SetResults: map[string]shell.Result{},
		SetErrors:  map[string]error{},
	}
}

func (m *MockLauncher) WithAdapters(records ...map[string]string) *MockLauncher {
	payload, _ := json.Marshal(records)
	m.QueryResult = shell.Result{Stdout: string(payload)}
	return m
}

func (m *MockLauncher) Launch(cmd shell.Command) (shell.Result, error) {
	m.Lock()
	defer m.Unlock()

	m.Calls = append(m.Calls, cmd)
	script := cmd.Args[len(cmd.Args)-1]

	if strings.Contains(script, "Get-NetAdapter") {
		if m.QueryPanic {
			panic("launcher exploded")
		}
		return m.QueryResult, m.QueryError
	}

	match := setAdapterRegExp.FindStringSubmatch(script)
	if match == nil {
		panic("unexpected script: " + script)
	}

	operation := strings.ToLower(match[1]) + ":" + strings.ReplaceAll(match[2], "''", "'")
	m.Operations = append(m.Operations, operation)

	return m.SetResults[operation], m.SetErrors[operation]
}

func (m *MockLauncher) QueryCount() int {
	count := 0
	for _, call := range m.Calls {
		if strings.Contains(call.Args[len(call.Args)-1], "Get-NetAdapter") {
			count++
		}
	}
	return count
}

// =============================================================================
// Fixtures
// =============================================================================

func ethernetRecord() map[string]string {
	return map[string]string{
		"Name":                 "Ethernet",
		"InterfaceDescription": "Realtek PCIe GbE Family Controller",
		"Status":               "Up",
	}
}

func wifiRecord() map[string]string {
	return map[string]string{
		"Name":                 "Wi-Fi",
		"InterfaceDescription": "Intel(R) Wi-Fi 6 AX200",
		"Status":               "Disabled",
	}
}
