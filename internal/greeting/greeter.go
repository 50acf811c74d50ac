package greeting

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/good-morning/goodmorning/internal/weather"
)

// weatherUnavailable is the summary used when the weather fetch fails.
// The greeting still goes out without it.
const weatherUnavailable = "не удалось получить данные о погоде"

// WeatherSource provides the current weather report.
type WeatherSource interface {
	Current(ctx context.Context) (weather.Report, error)
}

// Generator produces the greeting text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Sender delivers the final message.
type Sender interface {
	Send(ctx context.Context, content string) error
}

// Greeter runs one daily greeting: fetch weather, generate the message,
// deliver it with member mentions appended.
type Greeter struct {
	weather   WeatherSource
	generator Generator
	sender    Sender
	members   []Member
	logger    *slog.Logger
}

// NewGreeter creates a Greeter over the given collaborators.
func NewGreeter(source WeatherSource, generator Generator, sender Sender, members []Member, logger *slog.Logger) *Greeter {
	return &Greeter{
		weather:   source,
		generator: generator,
		sender:    sender,
		members:   members,
		logger:    logger.With("component", "greeting"),
	}
}

// Run performs a single greeting cycle. A weather failure degrades to a
// placeholder summary; generation and delivery failures abort the run.
func (g *Greeter) Run(ctx context.Context) error {
	summary := weatherUnavailable
	report, err := g.weather.Current(ctx)
	if err != nil {
		g.logger.Warn("weather fetch failed, greeting without it", "error", err)
	} else {
		summary = report.Summary()
	}

	text, err := g.generator.Generate(ctx, buildPrompt(g.members, summary))
	if err != nil {
		return fmt.Errorf("greeting: generate message: %w", err)
	}

	if err := g.sender.Send(ctx, formatMessage(g.members, text)); err != nil {
		return fmt.Errorf("greeting: deliver message: %w", err)
	}

	g.logger.Info("greeting delivered", "members", len(g.members), "weather", summary)
	return nil
}

// buildPrompt constructs the generation prompt from the member names and
// the weather summary.
func buildPrompt(members []Member, weatherSummary string) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}

	return fmt.Sprintf(
		"Create a kawaii, uwu and cute morning greeting in Russian, "+
			"including information about the weather for the day for: %s. "+
			"Weather: %s. "+
			"Include a suggestion on how to dress appropriately for the weather and etc. "+
			"The response should be a direct greeting, without any explanations or additional details.",
		strings.Join(names, ", "), weatherSummary)
}

// formatMessage appends the member mentions on a new line after the
// generated text.
func formatMessage(members []Member, text string) string {
	mentions := make([]string, 0, len(members))
	for _, m := range members {
		mentions = append(mentions, m.Mention())
	}
	return text + "\n" + strings.Join(mentions, " ")
}
