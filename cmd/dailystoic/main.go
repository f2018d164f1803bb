package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ktatarski/dailystoic"
	dsanthropic "github.com/ktatarski/dailystoic/anthropic"
	"github.com/ktatarski/dailystoic/gemini"
	dshttp "github.com/ktatarski/dailystoic/http"
	"github.com/ktatarski/dailystoic/openrouter"
	dsslog "github.com/ktatarski/dailystoic/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration file path. Set before calling Run().
	ConfigPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dailystoic"),
		kong.Description("Print one day's entry from the Daily Stoic page, with OCR artifacts repaired."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set DAILY_STOIC_URL or create %s\n", m.ConfigPath)
		return err
	}
	deps.Config = cfg

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Fetcher = dsslog.NewFetcher(dshttp.NewFetcher(), logger)

	// The corrector needs provider credentials; --raw runs never touch it.
	if !cli.Show.Raw {
		corrector, err := newCorrector(ctx, cfg, stderr)
		if err != nil {
			return err
		}
		deps.Corrector = dsslog.NewCorrector(corrector, logger)
	}

	return kongCtx.Run(deps)
}

// newCorrector wires the correction provider selected by the config.
func newCorrector(ctx context.Context, cfg Config, stderr io.Writer) (dailystoic.Corrector, error) {
	switch cfg.LLMProvider {
	case "", "openrouter":
		if cfg.LLMAPIKey == "" {
			fmt.Fprintln(stderr, "LLM_API_KEY not set. Get an API key at https://openrouter.ai/keys")
			return nil, fmt.Errorf("llm_api_key not configured for provider %q", "openrouter")
		}
		opts := []openrouter.Option{}
		if cfg.LLMEndpoint != "" {
			opts = append(opts, openrouter.WithEndpoint(cfg.LLMEndpoint))
		}
		if cfg.LLMModel != "" {
			opts = append(opts, openrouter.WithModel(cfg.LLMModel))
		}
		if cfg.LLMMaxTokens > 0 {
			opts = append(opts, openrouter.WithMaxTokens(cfg.LLMMaxTokens))
		}
		return openrouter.NewCorrector(cfg.LLMAPIKey, opts...), nil

	case "gemini":
		if cfg.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("gemini_api_key not configured for provider %q", "gemini")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCorrector(client, cfg.LLMModel), nil

	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			fmt.Fprintln(stderr, "ANTHROPIC_API_KEY not set. Get an API key at https://console.anthropic.com/")
			return nil, fmt.Errorf("anthropic_api_key not configured for provider %q", "anthropic")
		}
		return dsanthropic.NewCorrector(cfg.AnthropicAPIKey, cfg.LLMModel, int64(cfg.LLMMaxTokens)), nil

	default:
		return nil, fmt.Errorf("unknown llm_provider %q (want openrouter, gemini, or anthropic)", cfg.LLMProvider)
	}
}
