package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/good-morning/goodmorning/internal/discord"
	"github.com/good-morning/goodmorning/internal/greeting"
	"github.com/good-morning/goodmorning/internal/ollama"
	"github.com/good-morning/goodmorning/internal/weather"
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Send the morning greeting once",
	Long: "Run a single greeting cycle: fetch the current weather, generate the\n" +
		"greeting text, and post it to the configured Discord channel. This is\n" +
		"the command the generated service unit executes.",
	RunE: runGreet,
}

func init() {
	rootCmd.AddCommand(greetCmd)
}

func runGreet(cmd *cobra.Command, _ []string) error {
	// 1. Parse config.
	cfg, err := greeting.ParseConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("goodmorning greet: %w", err)
	}

	// Apply CLI flag overrides.
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// 2. Set up structured logger.
	logger := setupLogger(cfg.LogLevel)

	logger.Info("starting greeting run", "version", buildVersion)

	// 3. Create clients.
	weatherClient, err := weather.NewClient(cfg.Weather, logger)
	if err != nil {
		return fmt.Errorf("goodmorning greet: create weather client: %w", err)
	}
	ollamaClient, err := ollama.NewClient(cfg.Ollama, logger)
	if err != nil {
		return fmt.Errorf("goodmorning greet: create ollama client: %w", err)
	}
	discordClient, err := discord.NewClient(cfg.Discord, logger)
	if err != nil {
		return fmt.Errorf("goodmorning greet: create discord client: %w", err)
	}

	// 4. Run one greeting cycle.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	greeter := greeting.NewGreeter(weatherClient, ollamaClient, discordClient, greeting.ParseMembers(cfg.Members), logger)
	if err := greeter.Run(ctx); err != nil {
		return fmt.Errorf("goodmorning greet: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "greeting sent")
	return nil
}
