package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/good-morning/goodmorning/internal/packaging"
)

var (
	uninstallServiceName string
	purge                bool
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the goodmorning systemd timer and service",
	RunE:  runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVar(&uninstallServiceName, "service-name", "", "systemd unit base name")
	uninstallCmd.Flags().BoolVar(&purge, "purge", false, "also remove the config directory")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := packaging.InstallConfig{ServiceName: uninstallServiceName}
	installer := packaging.NewInstaller(cfg, packaging.NewSystemdController(), packaging.NewRootChecker(), logger)

	if err := installer.Uninstall(purge); err != nil {
		return fmt.Errorf("goodmorning uninstall: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "goodmorning uninstalled successfully")
	return nil
}
