package packaging

import (
	"strings"
	"testing"
)

func greetCfg() InstallConfig {
	cfg := InstallConfig{
		ServiceName: "good_morning",
		ExecStart:   "/usr/local/bin/greet",
		User:        "alice",
		Schedule:    "*-*-* 12:00:00",
	}
	return cfg
}

func TestGenerateServiceUnit_Sections(t *testing.T) {
	output := GenerateServiceUnit(greetCfg())

	for _, section := range []string{"[Unit]", "[Service]", "[Install]"} {
		if !strings.Contains(output, section) {
			t.Errorf("output missing %s section", section)
		}
	}
	if !strings.Contains(output, "Type=simple") {
		t.Error("output missing Type=simple")
	}
	if !strings.Contains(output, "WantedBy=multi-user.target") {
		t.Error("output missing WantedBy=multi-user.target")
	}
}

func TestGenerateServiceUnit_ExecStartAndUserExactlyOnce(t *testing.T) {
	output := GenerateServiceUnit(greetCfg())

	if got := strings.Count(output, "ExecStart=/usr/local/bin/greet\n"); got != 1 {
		t.Errorf("ExecStart line count = %d, want 1, got:\n%s", got, output)
	}
	if got := strings.Count(output, "User=alice\n"); got != 1 {
		t.Errorf("User line count = %d, want 1, got:\n%s", got, output)
	}
}

func TestGenerateServiceUnit_DescriptionUsesServiceName(t *testing.T) {
	output := GenerateServiceUnit(greetCfg())

	if !strings.Contains(output, "Description=good_morning daily greeting") {
		t.Errorf("output missing service-name description, got:\n%s", output)
	}
}

func TestGenerateServiceUnit_EmptyExecStart(t *testing.T) {
	cfg := greetCfg()
	cfg.ExecStart = ""
	output := GenerateServiceUnit(cfg)

	// No validation at this level: an empty command still renders an
	// ExecStart= line. systemd rejects it at start time.
	if !strings.Contains(output, "ExecStart=\n") {
		t.Errorf("output missing empty ExecStart line, got:\n%s", output)
	}
}

func TestGenerateServiceUnit_Deterministic(t *testing.T) {
	cfg := greetCfg()
	if GenerateServiceUnit(cfg) != GenerateServiceUnit(cfg) {
		t.Error("GenerateServiceUnit is not deterministic for identical inputs")
	}
	if GenerateTimerUnit(cfg) != GenerateTimerUnit(cfg) {
		t.Error("GenerateTimerUnit is not deterministic for identical inputs")
	}
}

func TestGenerateTimerUnit_Schedule(t *testing.T) {
	output := GenerateTimerUnit(greetCfg())

	if got := strings.Count(output, "OnCalendar=*-*-* 12:00:00\n"); got != 1 {
		t.Errorf("OnCalendar line count = %d, want 1, got:\n%s", got, output)
	}
	if got := strings.Count(output, "Persistent=true\n"); got != 1 {
		t.Errorf("Persistent line count = %d, want 1, got:\n%s", got, output)
	}
	if !strings.Contains(output, "WantedBy=timers.target") {
		t.Error("output missing WantedBy=timers.target")
	}
}

func TestGenerateTimerUnit_CustomSchedule(t *testing.T) {
	cfg := greetCfg()
	cfg.Schedule = "*-*-* 08:30:00"
	output := GenerateTimerUnit(cfg)

	if !strings.Contains(output, "OnCalendar=*-*-* 08:30:00") {
		t.Errorf("output missing custom schedule, got:\n%s", output)
	}
}

func TestGenerateUnits_DefaultedConfig(t *testing.T) {
	cfg := InstallConfig{}
	cfg.ApplyDefaults()

	service := GenerateServiceUnit(cfg)
	if !strings.Contains(service, "ExecStart=/usr/local/bin/good_morning greet --config /etc/good_morning/config.yaml") {
		t.Errorf("service unit missing default ExecStart, got:\n%s", service)
	}

	timer := GenerateTimerUnit(cfg)
	if !strings.Contains(timer, "OnCalendar=*-*-* 12:00:00") {
		t.Errorf("timer unit missing default schedule, got:\n%s", timer)
	}
}
