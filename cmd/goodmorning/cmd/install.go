package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/good-morning/goodmorning/internal/packaging"
)

var (
	installServiceName string
	installExec        string
	installUser        string
	installSchedule    string
	installUnitDir     string
	installNoStart     bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the daily greeting as a systemd timer",
	Long: "Write a service unit and a timer unit to the systemd unit directory,\n" +
		"reload the daemon, and enable and start the timer. Requires root.",
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installServiceName, "service-name", "", "systemd unit base name")
	installCmd.Flags().StringVar(&installExec, "exec", "", "command the service runs (default: the installed goodmorning binary)")
	installCmd.Flags().StringVar(&installUser, "user", "", "account the service runs as (default: the invoking user)")
	installCmd.Flags().StringVar(&installSchedule, "schedule", "", "OnCalendar expression for the timer")
	installCmd.Flags().StringVar(&installUnitDir, "unit-dir", "", "systemd unit directory")
	installCmd.Flags().BoolVar(&installNoStart, "no-start", false, "enable the timer but do not start it")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := packaging.InstallConfig{
		ServiceName: installServiceName,
		ExecStart:   installExec,
		User:        installUser,
		Schedule:    installSchedule,
		UnitDir:     installUnitDir,
		NoStart:     installNoStart,
		// With --exec the operator schedules an external binary and
		// there is nothing of ours to copy.
		InstallBinary: installExec == "",
	}

	installer := packaging.NewInstaller(cfg, packaging.NewSystemdController(), packaging.NewRootChecker(), logger)

	if err := installer.Install(); err != nil {
		return fmt.Errorf("goodmorning install: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "goodmorning installed successfully")
	return nil
}
