// Wazobia — multilingual agent for Nigerian languages.
// Entry point: serves the HTTP API or prints version/help.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/umaryunusa/wazobia/internal/domain/agent"
	"github.com/umaryunusa/wazobia/internal/domain/knowledge"
	"github.com/umaryunusa/wazobia/internal/infra/config"
	"github.com/umaryunusa/wazobia/internal/infra/eventbus"
	"github.com/umaryunusa/wazobia/internal/infra/llm"
	"github.com/umaryunusa/wazobia/internal/infra/sqlite"
	"github.com/umaryunusa/wazobia/internal/server"
	"github.com/umaryunusa/wazobia/internal/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	if len(args) > 0 && args[0] == "serve" {
		return serve(out)
	}

	fs := flag.NewFlagSet("wazobia", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}

	if *showHelp {
		printHelp(out)
		return 0
	}

	// Default: print version
	fmt.Fprintln(out, version.String()) //nolint:errcheck
	return 0
}

func serve(out io.Writer) int {
	cfg := config.Load()

	db, err := sqlite.NewDB(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(out, "error: open database: %v\n", err) //nolint:errcheck
		return 1
	}
	if err := sqlite.MigrateUp(db); err != nil {
		fmt.Fprintf(out, "error: migrate database: %v\n", err) //nolint:errcheck
		return 1
	}

	base, err := knowledge.Load(cfg.KnowledgePath)
	if err != nil {
		fmt.Fprintf(out, "warning: corpus not loaded: %v\n", err) //nolint:errcheck
		base = knowledge.NewBase(nil)
	}

	// Without credentials the agent still serves: every response degrades to
	// its deterministic placeholder.
	var provider llm.LLMProvider
	if cfg.APIKey() != "" || cfg.LLMProvider == "local" {
		provider, err = llm.NewProvider(cfg.LLMProvider, cfg.LLMBaseURL, cfg.APIKey(), cfg.DefaultModel)
		if err != nil {
			fmt.Fprintf(out, "warning: LLM provider %s unavailable: %v\n", cfg.LLMProvider, err) //nolint:errcheck
		}
	} else {
		fmt.Fprintf(out, "warning: no API key for provider %s, responses degrade to placeholders\n", cfg.LLMProvider) //nolint:errcheck
	}

	ag := agent.New(provider, base, cfg.Temperature, cfg.MaxTokens)
	bus := eventbus.New()

	srvCfg := server.DefaultConfig()
	srvCfg.Host = cfg.APIHost
	srvCfg.Port = cfg.APIPort
	srv := server.NewServer(db, ag, bus, cfg, srvCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(out, "error: %v\n", err) //nolint:errcheck
			return 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(out, "error: %v\n", err) //nolint:errcheck
		return 1
	}
	return 0
}

func printHelp(out io.Writer) {
	helpText := `Wazobia - Multilingual agent for Nigerian languages

Usage:
  wazobia [options]
  wazobia serve

Options:
  --version    Show version information
  --help       Show this help message

Commands:
  serve        Start the HTTP API server

Configuration is read from WAZOBIA_* environment variables (and a .env file
in the working directory). See internal/infra/config for the full list.

Examples:
  wazobia --version
  WAZOBIA_API_PORT=8000 wazobia serve`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
