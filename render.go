package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"netswitch/network"
	"netswitch/persistence"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return errors.Errorf("unknown output format %q, expected one of table, json, yaml", format)
}

func renderStructured(out io.Writer, format string, value interface{}) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return errors.WithStack(encoder.Encode(value))
	case FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		err := encoder.Encode(value)
		if err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(encoder.Close())
	}
	return validateFormat(format)
}

func renderAdapters(out io.Writer, format string, adapters []network.Adapter) error {
	if format != FormatTable {
		return renderStructured(out, format, adapters)
	}

	if len(adapters) == 0 {
		fmt.Fprintln(out, "No network adapters found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tSTATUS\tDESCRIPTION")
	for _, adapter := range adapters {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", adapter.Name, adapter.Type, adapter.Status, adapter.InterfaceDescription)
	}
	return errors.WithStack(w.Flush())
}

func describeAdapter(adapter *network.Adapter) string {
	if adapter == nil {
		return "not found"
	}

	state := "disabled"
	if adapter.IsEnabled() {
		state = "enabled"
	}

	return fmt.Sprintf("%s (%s) [%s]", adapter.Name, adapter.Status, state)
}

func renderStatus(out io.Writer, elevated bool, ethernet *network.Adapter, wifi *network.Adapter) error {
	admin := "no"
	if elevated {
		admin = "yes"
	}

	switchState := "available"
	switch {
	case ethernet == nil:
		switchState = "unavailable, no ethernet adapter"
	case wifi == nil:
		switchState = "unavailable, no wifi adapter"
	}

	w := tabwriter.NewWriter(out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "Administrator:\t%s\n", admin)
	fmt.Fprintf(w, "Ethernet:\t%s\n", describeAdapter(ethernet))
	fmt.Fprintf(w, "Wi-Fi:\t%s\n", describeAdapter(wifi))
	fmt.Fprintf(w, "Switch:\t%s\n", switchState)
	return errors.WithStack(w.Flush())
}

func renderHistory(out io.Writer, format string, entries []persistence.JournalEntry) error {
	if format != FormatTable {
		return renderStructured(out, format, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No operations recorded.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tOPERATION\tTARGET\tOUTCOME\tDURATION\tMESSAGE")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.Timestamp.Local().Format(time.DateTime),
			entry.Operation,
			entry.Target,
			entry.Outcome,
			entry.Duration,
			entry.Message,
		)
	}
	return errors.WithStack(w.Flush())
}
