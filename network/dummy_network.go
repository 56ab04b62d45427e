package network

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"netswitch/shell"
)

// DummyLauncher simulates the NetAdapter cmdlets in memory so the tool can
// run on machines without them.
type DummyLauncher struct {
	sync.Mutex
	adapters []dummyAdapter
}

type dummyAdapter struct {
	Name                 string
	InterfaceDescription string
	Status               string
}

var setAdapterRegExp = regexp.MustCompile(
	`(Enable|Disable)-NetAdapter -Name \(\[System\.Management\.Automation\.WildcardPattern\]::Escape\('((?:[^']|'')*)'\)\)`,
)

func NewDummyLauncher() *DummyLauncher {
	return &DummyLauncher{
		adapters: []dummyAdapter{
			{Name: "Ethernet", InterfaceDescription: "Realtek PCIe GbE Family Controller", Status: "Up"},
			{Name: "Wi-Fi", InterfaceDescription: "Intel(R) Wi-Fi 6 AX200 160MHz", Status: "Disabled"},
			{Name: "Bluetooth Network Connection", InterfaceDescription: "Bluetooth Device (Personal Area Network)", Status: "Disconnected"},
		},
	}
}

func (dl *DummyLauncher) Launch(cmd shell.Command) (shell.Result, error) {
	dl.Lock()
	defer dl.Unlock()

	if len(cmd.Args) == 0 {
		return shell.Result{ExitCode: 1, Stderr: "no script given"}, nil
	}
	script := cmd.Args[len(cmd.Args)-1]

	if strings.Contains(script, "Get-NetAdapter") {
		payload, err := json.Marshal(dl.adapters)
		if err != nil {
			return shell.Result{ExitCode: 1, Stderr: err.Error()}, nil
		}
		return shell.Result{Stdout: string(payload)}, nil
	}

	match := setAdapterRegExp.FindStringSubmatch(script)
	if match == nil {
		return shell.Result{ExitCode: 1, Stderr: fmt.Sprintf("unsupported script: %s", script)}, nil
	}

	name := strings.ReplaceAll(match[2], "''", "'")
	for i := range dl.adapters {
		if dl.adapters[i].Name != name {
			continue
		}

		if match[1] == "Enable" {
			dl.adapters[i].Status = string(StatusUp)
		} else {
			dl.adapters[i].Status = string(StatusDisabled)
		}

		return shell.Result{}, nil
	}

	return shell.Result{
		ExitCode: 1,
		Stderr:   fmt.Sprintf("%s-NetAdapter : No MSFT_NetAdapter objects found with property 'Name' equal to '%s'.", match[1], name),
	}, nil
}
