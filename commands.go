package main

import (
	"fmt"
	"io"

	"netswitch/config"
	"netswitch/filesystem"
	"netswitch/logging"
	"netswitch/network"
	"netswitch/release"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// cli holds what the persistent pre-run sets up so it can be torn down
// after the command finished, successfully or not.
type cli struct {
	cliArgs   *config.CommandLineArguments
	agent     *Agent
	logCloser io.Closer
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{cliArgs: &config.CommandLineArguments{}}

	rootCmd := &cobra.Command{
		Use:           "netswitch",
		Short:         "Switch between the wired and the wireless network adapter",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return c.setup(cmd)
		},
	}

	config.BindFlags(rootCmd.PersistentFlags(), c.cliArgs)

	rootCmd.AddCommand(
		newStatusCmd(c),
		newListCmd(c),
		newSwitchCmd(c),
		newEnableCmd(c),
		newDisableCmd(c),
		newHistoryCmd(c),
		newVersionCmd(),
	)

	return rootCmd, c
}

func (c *cli) setup(cmd *cobra.Command) error {
	if c.cliArgs.ConfigFileLocation != "" {
		exists, err := filesystem.FileExists(c.cliArgs.ConfigFileLocation)
		if err != nil {
			return errors.Wrap(err, "failed to check config file")
		}
		if !exists {
			return errors.Errorf("config file %s does not exist", c.cliArgs.ConfigFileLocation)
		}

		err = config.LoadFile(c.cliArgs.ConfigFileLocation, cmd.Flags(), c.cliArgs)
		if err != nil {
			return err
		}
	}

	err := config.Validate(c.cliArgs)
	if err != nil {
		return err
	}

	err = filesystem.InitDirectories(c.cliArgs)
	if err != nil {
		return err
	}

	c.logCloser = logging.SetupLogger(c.cliArgs)

	cfg := config.New(c.cliArgs)
	c.agent, err = NewAgent(&cfg)
	if err != nil {
		return err
	}

	if !c.agent.Manager.IsAdmin() {
		log.Warn().Msg("netswitch is not running with administrator privileges")
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: not running as administrator, enable, disable and switch will be refused.")
	}

	return nil
}

func (c *cli) close() error {
	var err error

	if c.agent != nil {
		err = multierr.Append(err, c.agent.Close())
	}

	if c.logCloser != nil {
		err = multierr.Append(err, c.logCloser.Close())
	}

	return err
}

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the ethernet and wifi adapter and whether a switch is possible",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapters, err := c.agent.Manager.GetAdapters()
			if err != nil {
				return err
			}

			return renderStatus(
				cmd.OutOrStdout(),
				c.agent.Manager.IsAdmin(),
				network.FirstOfType(adapters, network.TypeEthernet),
				network.FirstOfType(adapters, network.TypeWiFi),
			)
		},
	}
}

func newListCmd(c *cli) *cobra.Command {
	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every network adapter with its classification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateFormat(format)
			if err != nil {
				return err
			}

			adapters, err := c.agent.Manager.GetAdapters()
			if err != nil {
				return err
			}

			return renderAdapters(cmd.OutOrStdout(), format, adapters)
		},
	}

	listCmd.Flags().StringVarP(&format, "output", "o", FormatTable, "output format: table, json or yaml")

	return listCmd
}

func newSwitchCmd(c *cli) *cobra.Command {
	var yes bool

	switchCmd := &cobra.Command{
		Use:       "switch ethernet|wifi",
		Short:     "Disable one adapter, then enable the other",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"ethernet", "wifi"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := network.TypeEthernet
			operation := "switch-ethernet"
			switchFn := c.agent.Manager.SwitchToEthernet
			if args[0] == "wifi" {
				target = network.TypeWiFi
				operation = "switch-wifi"
				switchFn = c.agent.Manager.SwitchToWifi
			}

			if !yes {
				proceed, err := c.confirmSwitch(cmd, target)
				if err != nil {
					return err
				}
				if !proceed {
					c.agent.Decline(operation, string(target))
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted, no adapter was changed.")
					return nil
				}
			}

			err := c.agent.Run(operation, string(target), switchFn)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s.\n", target)
			return nil
		},
	}

	switchCmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return switchCmd
}

// confirmSwitch names both adapters in the prompt. When either is missing
// there is nothing to confirm and the switch itself reports the problem.
func (c *cli) confirmSwitch(cmd *cobra.Command, target network.AdapterType) (bool, error) {
	adapters, err := c.agent.Manager.GetAdapters()
	if err != nil {
		return false, err
	}

	ethernet := network.FirstOfType(adapters, network.TypeEthernet)
	wifi := network.FirstOfType(adapters, network.TypeWiFi)
	if ethernet == nil || wifi == nil {
		return true, nil
	}

	enable, disable := ethernet, wifi
	if target == network.TypeWiFi {
		enable, disable = wifi, ethernet
	}

	question := fmt.Sprintf("Disable '%s' and enable '%s'?", disable.Name, enable.Name)
	return confirm(cmd.InOrStdin(), cmd.OutOrStdout(), question)
}

func newEnableCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "enable NAME",
		Short: "Enable a single adapter by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			err := c.agent.Run("enable", name, func() error {
				return c.agent.Manager.EnableAdapter(name)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Enabled '%s'.\n", name)
			return nil
		},
	}
}

func newDisableCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "disable NAME",
		Short: "Disable a single adapter by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			err := c.agent.Run("disable", name, func() error {
				return c.agent.Manager.DisableAdapter(name)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Disabled '%s'.\n", name)
			return nil
		},
	}
}

func newHistoryCmd(c *cli) *cobra.Command {
	var limit int
	var format string

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded operations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateFormat(format)
			if err != nil {
				return err
			}

			if c.cliArgs.DisableJournal {
				return errors.New("the journal is disabled")
			}

			entries, err := c.agent.Journal.List(limit)
			if err != nil {
				return err
			}

			return renderHistory(cmd.OutOrStdout(), format, entries)
		},
	}

	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show, 0 for all")
	historyCmd.Flags().StringVarP(&format, "output", "o", FormatTable, "output format: table, json or yaml")

	return historyCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the release version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := release.GetVersion()
			if err != nil {
				return err
			}

			goos, arch := release.GetSystemInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "netswitch %s %s/%s\n", version, goos, arch)
			return nil
		},
	}
}
