package packaging

// GenerateDefaultConfig produces a starter config.yaml for the greeter.
// Secrets are left as placeholders; the greet command also honors the
// GOOD_MORNING_* environment variables, which override file values.
func GenerateDefaultConfig() string {
	return `# good_morning greeter configuration
# Values here can be overridden by GOOD_MORNING_DISCORD_TOKEN,
# GOOD_MORNING_CHANNEL_ID and GOOD_MORNING_MEMBERS.

# members is a comma-separated list of name,discord-id pairs:
# members: alice,111111111111111111,bob,222222222222222222
members: ""

log_level: info

discord:
  # token: your-bot-token
  # channel_id: "123456789012345678"

weather:
  latitude: 55.7558
  longitude: 37.6173

ollama:
  base_url: http://localhost:11434
  model: llama3
`
}
