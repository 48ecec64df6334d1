package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/emzola/biblioadmin/client"
	"github.com/emzola/biblioadmin/config"
	"github.com/emzola/biblioadmin/internal/jsonlog"
	"github.com/spf13/cobra"
)

// app holds the wiring shared by every page command: configuration, logger,
// the typed API clients and the terminal in/out used for prompts and notices.
type app struct {
	config config.Config
	logger *jsonlog.Logger
	client *client.Client
	prompt *prompter
	notify *notifier
	out    io.Writer
}

func main() {
	a := &app{}

	var (
		cfgPath string
		baseURL string
		timeout string
		verbose bool
	)

	root := &cobra.Command{
		Use:           "biblioadmin",
		Short:         "Interactive admin console for the library catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.Config
			cfg.API.BaseURL = baseURL
			cfg.API.Timeout = timeout
			if err := config.Load(cfgPath, &cfg); err != nil {
				return err
			}
			// Explicit flags win over the config file.
			if cmd.Flags().Changed("base-url") {
				cfg.API.BaseURL = baseURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.API.Timeout = timeout
			}
			dur, err := time.ParseDuration(cfg.API.Timeout)
			if err != nil {
				return fmt.Errorf("invalid api timeout %q: %w", cfg.API.Timeout, err)
			}

			level := jsonlog.LevelError
			if verbose {
				level = jsonlog.LevelInfo
			}

			a.config = cfg
			a.logger = jsonlog.New(os.Stderr, level)
			a.client = client.New(cfg.API.BaseURL, client.NewHTTPClient(dur))
			a.out = os.Stdout
			a.prompt = &prompter{in: bufio.NewReader(os.Stdin), out: a.out}
			a.notify = &notifier{out: a.out}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "biblioadmin.yaml", "Path to config file")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:4000/api/v1", "Base URL of the catalog API")
	root.PersistentFlags().StringVar(&timeout, "timeout", "30s", "HTTP client timeout")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log info-level entries to stderr")

	root.AddCommand(
		a.authorsCommand(),
		a.publishersCommand(),
		a.categoriesCommand(),
		a.booksCommand(),
		a.borrowingsCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
