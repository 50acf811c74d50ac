// Package packaging implements systemd packaging for the good_morning
// daily greeter: unit file generation, privileged installation, and
// timer registration.
package packaging

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
)

// InstallConfig holds the configuration for installing good_morning as a
// systemd service triggered by a timer.
// InstallConfig is passed as a constructor argument — no file I/O in this package.
type InstallConfig struct {
	// ServiceName is the systemd unit base name. Both generated units
	// derive from it: <ServiceName>.service and <ServiceName>.timer.
	// Default: good_morning
	ServiceName string

	// BinaryPath is the path to install the goodmorning binary.
	// Default: /usr/local/bin/good_morning
	BinaryPath string

	// ExecStart is the command line the service runs. It is written to the
	// unit file verbatim, without validation. Default: "<BinaryPath> greet
	// --config <ConfigDir>/config.yaml".
	ExecStart string

	// User is the account the service runs as.
	// Default: the invoking user (SUDO_USER if set, else the process owner).
	User string

	// Schedule is the systemd OnCalendar expression for the timer.
	// Default: *-*-* 12:00:00 (daily at noon)
	Schedule string

	// UnitDir is the directory for the generated unit files.
	// Default: /etc/systemd/system
	UnitDir string

	// ConfigDir is the greeter configuration directory.
	// Default: /etc/good_morning
	ConfigDir string

	// InstallBinary controls whether the installer copies the running
	// executable to BinaryPath. The install command disables it when the
	// operator points ExecStart at an external binary.
	InstallBinary bool

	// NoStart skips starting the timer after enabling it.
	NoStart bool
}

// DefaultServiceName is the default systemd unit base name.
const DefaultServiceName = "good_morning"

// DefaultBinaryPath is the default path to install the goodmorning binary.
const DefaultBinaryPath = "/usr/local/bin/good_morning"

// DefaultSchedule fires the timer daily at noon. Persistent=true in the
// generated timer catches runs missed while the machine was down.
const DefaultSchedule = "*-*-* 12:00:00"

// DefaultUnitDir is the default systemd unit directory.
const DefaultUnitDir = "/etc/systemd/system"

// DefaultConfigDir is the default greeter configuration directory.
const DefaultConfigDir = "/etc/good_morning"

// ApplyDefaults sets default values for zero-valued fields.
func (c *InstallConfig) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.BinaryPath == "" {
		c.BinaryPath = DefaultBinaryPath
	}
	if c.UnitDir == "" {
		c.UnitDir = DefaultUnitDir
	}
	if c.ConfigDir == "" {
		c.ConfigDir = DefaultConfigDir
	}
	if c.Schedule == "" {
		c.Schedule = DefaultSchedule
	}
	if c.User == "" {
		c.User = InvokingUser()
	}
	if c.ExecStart == "" {
		c.ExecStart = c.BinaryPath + " greet --config " + filepath.Join(c.ConfigDir, "config.yaml")
	}
}

// Validate checks that required fields are set. The ExecStart command and
// User account are deliberately not validated beyond presence of the
// fields that name the units: a bad command or unknown account surfaces
// when systemd starts the service, not here.
func (c *InstallConfig) Validate() error {
	if c.ServiceName == "" {
		return errors.New("packaging: config: ServiceName is required")
	}
	if c.UnitDir == "" {
		return errors.New("packaging: config: UnitDir is required")
	}
	if c.ConfigDir == "" {
		return errors.New("packaging: config: ConfigDir is required")
	}
	return nil
}

// ServiceUnitPath returns the destination path of the service unit file.
func (c *InstallConfig) ServiceUnitPath() string {
	return filepath.Join(c.UnitDir, c.ServiceName+".service")
}

// TimerUnitPath returns the destination path of the timer unit file.
func (c *InstallConfig) TimerUnitPath() string {
	return filepath.Join(c.UnitDir, c.ServiceName+".timer")
}

// TimerUnit returns the timer unit name passed to systemctl.
func (c *InstallConfig) TimerUnit() string {
	return c.ServiceName + ".timer"
}

// InvokingUser resolves the account the service should run as: the user
// behind sudo when install runs elevated, otherwise the process owner.
func InvokingUser() string {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		return sudoUser
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "root"
}
