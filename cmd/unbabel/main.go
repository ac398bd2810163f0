package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/unbabel/tapi/client"
	"github.com/unbabel/tapi/client/transport"
)

var (
	envFile string
	baseURL string
	sandbox bool
	debug   bool
	timeout time.Duration
)

const defaultEnvFile = ".env"

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "unbabel",
		Short:        "Command line access to the Unbabel translation API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			return loadEnvFile(envFile, cmd.Flag("env").Changed)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env", defaultEnvFile, "Path to a .env file with UNBABEL_* variables")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Override the API root (default from UNBABEL_BASE_URL or the selected environment)")
	rootCmd.PersistentFlags().BoolVar(&sandbox, "sandbox", false, "Use the sandbox environment (also UNBABEL_SANDBOX=true)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output, including request dumps")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")

	rootCmd.AddCommand(newSubmitCmd())
	rootCmd.AddCommand(newBulkCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newJobsCmd())
	rootCmd.AddCommand(newWaitCmd())
	rootCmd.AddCommand(newXliffSubmitCmd())
	rootCmd.AddCommand(newXliffGetCmd())
	rootCmd.AddCommand(newLanguagePairsCmd())
	rootCmd.AddCommand(newTonesCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newWordCountCmd())

	return rootCmd
}

// newClient builds a client from the environment and the persistent flags.
func newClient() (*client.Client, error) {
	cfg, err := client.LoadConfig()
	if err != nil {
		return nil, err
	}
	cfg.Sandbox = cfg.Sandbox || sandbox

	var opts []client.Option
	root := baseURL
	if root == "" {
		root = os.Getenv("UNBABEL_BASE_URL")
	}
	if root != "" {
		if u, err := url.Parse(root); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("base url must be absolute: %q", root)
		}
		opts = append(opts, client.WithBaseURL(root))
	}

	t := transport.NewResty(transport.WithTimeout(timeout), transport.WithDebugLogging(debug))
	c := client.New(cfg, t, opts...)
	log.Debug().
		Bool("sandbox", c.Sandbox()).
		Str("base_url", c.BuildRequestURL("/")).
		Msg("client ready")
	return c, nil
}

// call runs one client operation under the request timeout and prints its
// response.
func call(cmd *cobra.Command, name string, op func(ctx context.Context, c *client.Client) (*client.Response, error)) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	start := time.Now()
	resp, err := op(ctx, c)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("operation", name).Dur("elapsed", elapsed).Msg("request failed")
		return err
	}
	log.Debug().Str("operation", name).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("response received")
	return printResponse(cmd.OutOrStdout(), resp)
}

// printResponse writes the body, indented when it is JSON, and turns a
// non-2xx status into an error so the process exits non-zero.
func printResponse(w io.Writer, resp *client.Response) error {
	body := resp.Body
	if gjson.ValidBytes(body) {
		body = pretty.Pretty(body)
	} else if len(body) > 0 && body[len(body)-1] != '\n' {
		body = append(body, '\n')
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}

// parseOptions turns repeated key=value flags into request options. Values
// that parse as JSON are sent as JSON; anything else is sent as a string.
func parseOptions(pairs []string, into client.Options) error {
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return fmt.Errorf("invalid option %q: expected key=value", pair)
		}
		if json.Valid([]byte(v)) {
			into[k] = json.RawMessage(v)
		} else {
			into[k] = v
		}
	}
	return nil
}

// setIfNotEmpty adds a string option only when the flag carried a value.
func setIfNotEmpty(opts client.Options, key, value string) {
	if value != "" {
		opts[key] = value
	}
}

// readInput reads a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("input file %q not found", path)
	}
	return data, err
}
