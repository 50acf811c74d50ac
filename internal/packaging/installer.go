package packaging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/good-morning/goodmorning/internal/fsutil"
)

// Installer handles installing and uninstalling the good_morning timer
// and its paired service.
type Installer struct {
	cfg     InstallConfig
	systemd SystemdController
	root    RootChecker
	logger  *slog.Logger
}

// NewInstaller creates a new Installer with defaults applied.
func NewInstaller(cfg InstallConfig, systemd SystemdController, root RootChecker, logger *slog.Logger) *Installer {
	cfg.ApplyDefaults()
	return &Installer{
		cfg:     cfg,
		systemd: systemd,
		root:    root,
		logger:  logger.With("component", "packaging"),
	}
}

// Install writes both unit files and registers the timer with systemd.
// Every step's result is checked and the first failure aborts the install;
// previously completed steps are not rolled back and a rerun after fixing
// the cause overwrites them.
func (ins *Installer) Install() error {
	// 1. Check root
	if !ins.root.IsRoot() {
		return errors.New("packaging: install requires root privileges")
	}

	// 2. Check systemd
	if !ins.systemd.IsAvailable() {
		return errors.New("packaging: systemd is not available")
	}

	// 3. Create directories
	if err := os.MkdirAll(ins.cfg.ConfigDir, 0o755); err != nil {
		return fmt.Errorf("packaging: create directory %s: %w", ins.cfg.ConfigDir, err)
	}
	ins.logger.Info("directory created", "path", ins.cfg.ConfigDir)
	if err := os.MkdirAll(ins.cfg.UnitDir, 0o755); err != nil {
		return fmt.Errorf("packaging: create unit directory %s: %w", ins.cfg.UnitDir, err)
	}
	if err := unix.Access(ins.cfg.UnitDir, unix.W_OK); err != nil {
		return fmt.Errorf("packaging: unit directory %s is not writable: %w", ins.cfg.UnitDir, err)
	}

	// 4. Copy binary
	if ins.cfg.InstallBinary {
		if err := ins.copyBinary(); err != nil {
			return err
		}
	}

	// 5. Write default greeter config if absent
	configPath := filepath.Join(ins.cfg.ConfigDir, "config.yaml")
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(configPath, []byte(GenerateDefaultConfig()), 0o600); err != nil {
			return fmt.Errorf("packaging: write config: %w", err)
		}
		ins.logger.Info("default config written", "path", configPath)
	} else if err == nil {
		ins.logger.Info("existing config preserved", "path", configPath)
	} else {
		return fmt.Errorf("packaging: stat config: %w", err)
	}

	// 6. Write unit files. A rerun overwrites prior content; no backup is kept.
	units := []struct {
		path    string
		content string
	}{
		{ins.cfg.ServiceUnitPath(), GenerateServiceUnit(ins.cfg)},
		{ins.cfg.TimerUnitPath(), GenerateTimerUnit(ins.cfg)},
	}
	for _, u := range units {
		if err := fsutil.WriteFileAtomic(filepath.Dir(u.path), filepath.Base(u.path), []byte(u.content), 0o644); err != nil {
			return fmt.Errorf("packaging: write unit file %s: %w", u.path, err)
		}
		ins.logger.Info("unit file written", "path", u.path)
	}

	// 7. Reload, enable, start. Reload must come first so enable and start
	// see the freshly written units instead of stale definitions.
	if err := ins.systemd.DaemonReload(); err != nil {
		return fmt.Errorf("packaging: daemon-reload: %w", err)
	}
	ins.logger.Info("systemd daemon reloaded")

	if err := ins.systemd.Enable(ins.cfg.TimerUnit()); err != nil {
		return fmt.Errorf("packaging: enable timer: %w", err)
	}
	ins.logger.Info("timer enabled", "unit", ins.cfg.TimerUnit())

	if ins.cfg.NoStart {
		ins.logger.Info("timer not started (--no-start)", "unit", ins.cfg.TimerUnit())
		return nil
	}
	if err := ins.systemd.Start(ins.cfg.TimerUnit()); err != nil {
		return fmt.Errorf("packaging: start timer: %w", err)
	}
	ins.logger.Info("timer started", "unit", ins.cfg.TimerUnit())

	return nil
}

// Uninstall removes the timer and service units. If purge is true, the
// config directory is also removed.
func (ins *Installer) Uninstall(purge bool) error {
	// 1. Check root
	if !ins.root.IsRoot() {
		return errors.New("packaging: uninstall requires root privileges")
	}

	// 2. Check if installed (either unit file exists)
	_, serviceErr := os.Stat(ins.cfg.ServiceUnitPath())
	_, timerErr := os.Stat(ins.cfg.TimerUnitPath())
	if errors.Is(serviceErr, os.ErrNotExist) && errors.Is(timerErr, os.ErrNotExist) {
		ins.logger.Info("good_morning is not installed, nothing to do")
		return nil
	}

	// 3. Stop timer (ignore errors — timer may not be running)
	if err := ins.systemd.Stop(ins.cfg.TimerUnit()); err != nil {
		ins.logger.Info("stop timer", "error", err)
	}

	// 4. Disable timer
	if err := ins.systemd.Disable(ins.cfg.TimerUnit()); err != nil {
		ins.logger.Info("disable timer", "error", err)
	}

	// 5. Remove unit files
	for _, path := range []string{ins.cfg.TimerUnitPath(), ins.cfg.ServiceUnitPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("packaging: remove unit file: %w", err)
		}
		ins.logger.Info("unit file removed", "path", path)
	}

	// 6. Daemon reload
	if err := ins.systemd.DaemonReload(); err != nil {
		return fmt.Errorf("packaging: daemon-reload: %w", err)
	}

	// 7. Remove binary
	if err := os.Remove(ins.cfg.BinaryPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("packaging: remove binary: %w", err)
	}
	ins.logger.Info("binary removed", "path", ins.cfg.BinaryPath)

	// 8. Purge config directory if requested
	if purge {
		if err := os.RemoveAll(ins.cfg.ConfigDir); err != nil {
			return fmt.Errorf("packaging: remove directory %s: %w", ins.cfg.ConfigDir, err)
		}
		ins.logger.Info("directory removed", "path", ins.cfg.ConfigDir)
	}

	return nil
}

func (ins *Installer) copyBinary() error {
	srcPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("packaging: resolve executable path: %w", err)
	}

	// Resolve symlinks
	srcPath, err = filepath.EvalSymlinks(srcPath)
	if err != nil {
		return fmt.Errorf("packaging: resolve symlinks: %w", err)
	}

	dstPath := ins.cfg.BinaryPath

	// Skip if source and destination are the same
	if srcPath == dstPath {
		ins.logger.Info("binary already at install path, skipping copy", "path", dstPath)
		return nil
	}

	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("packaging: create binary directory: %w", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("packaging: open source binary: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return fmt.Errorf("packaging: create destination binary: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("packaging: copy binary: %w", err)
	}

	ins.logger.Info("binary installed", "src", srcPath, "dst", dstPath)
	return nil
}
