package network

import (
	"encoding/json"
	"fmt"
	"strings"

	"netswitch/shell"

	"github.com/pkg/errors"
)

const utf8Preamble = "[Console]::OutputEncoding = [System.Text.Encoding]::UTF8; " +
	"$OutputEncoding = [System.Text.Encoding]::UTF8; "

const listAdaptersScript = utf8Preamble +
	"Get-NetAdapter | Select-Object Name, InterfaceDescription, Status | ConvertTo-Json"

func powershellCommand(executable string, script string) shell.Command {
	return shell.Command{
		Name: executable,
		Args: []string{"-NoProfile", "-NonInteractive", "-Command", script},
	}
}

// quoteLiteral renders s as a single-quoted PowerShell string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// setAdapterScript builds the Enable-/Disable-NetAdapter call. -Name accepts
// wildcards, so the name is escaped to match exactly one adapter.
func setAdapterScript(name string, enable bool) string {
	verb := "Disable"
	if enable {
		verb = "Enable"
	}

	return fmt.Sprintf(
		"%s%s-NetAdapter -Name ([System.Management.Automation.WildcardPattern]::Escape(%s)) -Confirm:$false",
		utf8Preamble, verb, quoteLiteral(name),
	)
}

type adapterRecord struct {
	Name                 *string `json:"Name"`
	InterfaceDescription *string `json:"InterfaceDescription"`
	Status               *string `json:"Status"`
}

func (r adapterRecord) toAdapter() Adapter {
	name := ""
	if r.Name != nil {
		name = *r.Name
	}

	description := ""
	if r.InterfaceDescription != nil {
		description = *r.InterfaceDescription
	}

	status := string(StatusUnknown)
	if r.Status != nil {
		status = *r.Status
	}

	return Adapter{
		Name:                 name,
		InterfaceDescription: description,
		Status:               ClassifyStatus(status),
		Type:                 ClassifyType(description),
	}
}

// decodeAdapterRecords accepts what ConvertTo-Json emits: an array, a bare
// object for a single adapter, or nothing at all when there are no adapters.
func decodeAdapterRecords(output string) ([]adapterRecord, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(output, "\ufeff"))
	if trimmed == "" || trimmed == "null" {
		return []adapterRecord{}, nil
	}

	switch trimmed[0] {
	case '[':
		var records []adapterRecord
		err := json.Unmarshal([]byte(trimmed), &records)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode adapter array")
		}
		return records, nil
	case '{':
		var record adapterRecord
		err := json.Unmarshal([]byte(trimmed), &record)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode adapter object")
		}
		return []adapterRecord{record}, nil
	}

	return nil, errors.Errorf("expected a JSON array or object, got %q", abbreviate(trimmed, 32))
}

func abbreviate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max] + "..."
}
