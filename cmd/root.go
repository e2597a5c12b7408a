package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/ubergo/config"
	"github.com/s0up4200/ubergo/filter"
	"github.com/s0up4200/ubergo/uber"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	uberClient *uber.Client
	compiler   = filter.NewCompiler(filter.WithCache(16))

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ubergo",
	Short: "Query the Uber ride-hailing API from the command line",
	Long: `ubergo is a CLI for the Uber REST API. It lists products, price and
time estimates and promotions using your server token, and fetches the
profile and ride history of a user after an OAuth2 authorization.

Responses are printed as JSON exactly as the API returns them, optionally
narrowed with an expression filter.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the build information stamped into the binary.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging, os.Stderr)

	uberClient = newUberClient(cfg.Uber, logger)

	logger.Debug().
		Str("base_url", cfg.Uber.BaseURL).
		Str("api_version", cfg.Uber.APIVersion).
		Bool("user_token", cfg.Uber.AccessToken != "").
		Msg("Uber client ready")

	return nil
}

func newUberClient(c config.UberConfig, logger zerolog.Logger) *uber.Client {
	return uber.NewClient(uber.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		ServerToken:  c.ServerToken,
		RedirectURI:  c.RedirectURI,
		Name:         c.Name,
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
	}, logger,
		uber.WithBaseURL(c.BaseURL),
		uber.WithAPIVersion(c.APIVersion),
		uber.WithTimeout(c.Timeout),
	)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printJSON writes an API response, indented when configured
func printJSON(w io.Writer, body json.RawMessage) error {
	if cfg != nil && !cfg.Output.Indent {
		_, err := fmt.Fprintln(w, string(body))
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// applyFilter narrows the array under key when an expression was given
func applyFilter(body json.RawMessage, key, expression string) (json.RawMessage, error) {
	if expression == "" {
		return body, nil
	}

	f, err := compiler.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	filtered, kept, err := filter.Apply(body, key, f)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("filter", f.Expression()).
		Str("key", key).
		Int("kept", kept).
		Msg("Applied filter")

	return filtered, nil
}

// noConfig skips configuration loading for commands that do not call the API
func noConfig(cmd *cobra.Command, args []string) error {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !isTerminal(os.Stderr)}).With().Timestamp().Logger()
	return nil
}
