package packaging

import (
	"os/user"
	"testing"
)

func TestInstallConfig_ApplyDefaults(t *testing.T) {
	cfg := InstallConfig{}
	cfg.ApplyDefaults()

	if cfg.ServiceName != "good_morning" {
		t.Errorf("ServiceName = %q, want %q", cfg.ServiceName, "good_morning")
	}
	if cfg.BinaryPath != "/usr/local/bin/good_morning" {
		t.Errorf("BinaryPath = %q, want %q", cfg.BinaryPath, "/usr/local/bin/good_morning")
	}
	if cfg.UnitDir != "/etc/systemd/system" {
		t.Errorf("UnitDir = %q, want %q", cfg.UnitDir, "/etc/systemd/system")
	}
	if cfg.ConfigDir != "/etc/good_morning" {
		t.Errorf("ConfigDir = %q, want %q", cfg.ConfigDir, "/etc/good_morning")
	}
	if cfg.Schedule != "*-*-* 12:00:00" {
		t.Errorf("Schedule = %q, want %q", cfg.Schedule, "*-*-* 12:00:00")
	}
	if cfg.ExecStart != "/usr/local/bin/good_morning greet --config /etc/good_morning/config.yaml" {
		t.Errorf("ExecStart = %q, want default greet command", cfg.ExecStart)
	}
	if cfg.User == "" {
		t.Error("User is empty, want invoking user")
	}
}

func TestInstallConfig_CustomValues(t *testing.T) {
	cfg := InstallConfig{
		ServiceName: "evening_report",
		BinaryPath:  "/opt/reports/bin/report",
		ExecStart:   "/opt/reports/bin/report --now",
		User:        "reports",
		Schedule:    "*-*-* 18:00:00",
		UnitDir:     "/usr/lib/systemd/system",
		ConfigDir:   "/opt/reports/etc",
	}
	cfg.ApplyDefaults()

	if cfg.ServiceName != "evening_report" {
		t.Errorf("ServiceName = %q, want %q", cfg.ServiceName, "evening_report")
	}
	if cfg.ExecStart != "/opt/reports/bin/report --now" {
		t.Errorf("ExecStart = %q, want custom command", cfg.ExecStart)
	}
	if cfg.User != "reports" {
		t.Errorf("User = %q, want %q", cfg.User, "reports")
	}
	if cfg.Schedule != "*-*-* 18:00:00" {
		t.Errorf("Schedule = %q, want %q", cfg.Schedule, "*-*-* 18:00:00")
	}
}

func TestInstallConfig_UnitPaths(t *testing.T) {
	cfg := InstallConfig{}
	cfg.ApplyDefaults()

	if got := cfg.ServiceUnitPath(); got != "/etc/systemd/system/good_morning.service" {
		t.Errorf("ServiceUnitPath() = %q", got)
	}
	if got := cfg.TimerUnitPath(); got != "/etc/systemd/system/good_morning.timer" {
		t.Errorf("TimerUnitPath() = %q", got)
	}
	if got := cfg.TimerUnit(); got != "good_morning.timer" {
		t.Errorf("TimerUnit() = %q", got)
	}
}

func TestInstallConfig_Validate(t *testing.T) {
	cfg := InstallConfig{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after ApplyDefaults = %v, want nil", err)
	}

	cfg.ServiceName = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with empty ServiceName = nil, want error")
	}
}

func TestInvokingUser_SudoUser(t *testing.T) {
	t.Setenv("SUDO_USER", "alice")
	if got := InvokingUser(); got != "alice" {
		t.Errorf("InvokingUser() = %q, want %q", got, "alice")
	}
}

func TestInvokingUser_ProcessOwner(t *testing.T) {
	t.Setenv("SUDO_USER", "")
	current, err := user.Current()
	if err != nil {
		t.Skipf("user.Current: %v", err)
	}
	if got := InvokingUser(); got != current.Username {
		t.Errorf("InvokingUser() = %q, want %q", got, current.Username)
	}
}
