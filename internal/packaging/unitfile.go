package packaging

import "fmt"

// GenerateServiceUnit produces the systemd service unit text for the
// greeter. It is a pure function of cfg: identical inputs yield
// byte-identical output, and no field is validated — an empty ExecStart
// still renders an empty ExecStart= line, which systemd rejects at start
// time, not here. Callers are expected to have applied defaults.
func GenerateServiceUnit(cfg InstallConfig) string {
	return fmt.Sprintf(`[Unit]
Description=%s daily greeting
After=network-online.target
Wants=network-online.target

[Service]
Type=simple
ExecStart=%s
User=%s

[Install]
WantedBy=multi-user.target
`, cfg.ServiceName, cfg.ExecStart, cfg.User)
}

// GenerateTimerUnit produces the systemd timer unit text that fires the
// paired service on the configured calendar. Persistent=true makes systemd
// catch up on runs missed while the machine was down. Pure like
// GenerateServiceUnit; the schedule expression is passed through verbatim.
func GenerateTimerUnit(cfg InstallConfig) string {
	return fmt.Sprintf(`[Unit]
Description=Daily trigger for %s

[Timer]
OnCalendar=%s
Persistent=true

[Install]
WantedBy=timers.target
`, cfg.ServiceName, cfg.Schedule)
}
