package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/good-morning/goodmorning/internal/packaging"
)

var statusServiceName string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the installed timer state",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusServiceName, "service-name", "", "systemd unit base name")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg := packaging.InstallConfig{ServiceName: statusServiceName}
	cfg.ApplyDefaults()

	systemd := packaging.NewSystemdController()
	if !systemd.IsAvailable() {
		return errors.New("goodmorning status: systemd is not available")
	}

	w := cmd.OutOrStdout()

	installed := true
	if _, err := os.Stat(cfg.TimerUnitPath()); errors.Is(err, os.ErrNotExist) {
		installed = false
	}
	fmt.Fprintf(w, "Unit files: %s\n", presentWord(installed))
	if !installed {
		return nil
	}

	timer := cfg.TimerUnit()
	fmt.Fprintf(w, "Timer:      %s\n", timer)
	fmt.Fprintf(w, "Enabled:    %t\n", systemd.IsEnabled(timer))
	fmt.Fprintf(w, "Active:     %t\n", systemd.IsActive(timer))
	return nil
}

func presentWord(present bool) string {
	if present {
		return "installed"
	}
	return "not installed"
}
