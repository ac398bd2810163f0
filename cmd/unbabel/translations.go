package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/unbabel/tapi/client"
	"github.com/unbabel/tapi/client/poll"
)

func newSubmitCmd() *cobra.Command {
	var text, target, source, callbackURL, formality, instructions, textFormat string
	var topics, options []string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a single translation",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := client.Options{}
			setIfNotEmpty(opts, "source_language", source)
			setIfNotEmpty(opts, "callback_url", callbackURL)
			setIfNotEmpty(opts, "formality", formality)
			setIfNotEmpty(opts, "instructions", instructions)
			setIfNotEmpty(opts, "text_format", textFormat)
			if len(topics) > 0 {
				opts["topics"] = topics
			}
			if err := parseOptions(options, opts); err != nil {
				return err
			}

			log.Debug().
				Str("target_language", target).
				Int("text_len", len(text)).
				Int("options", len(opts)).
				Msg("submitting translation")

			return call(cmd, "submit", func(ctx context.Context, c *client.Client) (*client.Response, error) {
				return c.SubmitTranslation(ctx, text, target, opts)
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Text to translate")
	cmd.Flags().StringVar(&target, "target", "", "Target language code, e.g. pt")
	cmd.Flags().StringVar(&source, "source", "", "Source language code")
	cmd.Flags().StringVar(&callbackURL, "callback-url", "", "URL notified when the job changes status")
	cmd.Flags().StringVar(&formality, "formality", "", "Formality, e.g. Informal")
	cmd.Flags().StringVar(&instructions, "instructions", "", "Instructions for the translators")
	cmd.Flags().StringVar(&textFormat, "text-format", "", "Format of text, e.g. text or html")
	cmd.Flags().StringArrayVar(&topics, "topic", nil, "Topic of the text (repeatable)")
	cmd.Flags().StringArrayVar(&options, "option", nil, "Extra request field as key=value (repeatable, overrides other flags)")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newBulkCmd() *cobra.Command {
	var file, callbackURL, formality string
	var options []string

	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Submit a JSON array of translations in one request",
		Long: `Submit several translations at once. --file points to a JSON array of
objects with at least text and target_language; use - for stdin. Shared
flags fill fields an entry leaves unset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			var entries []client.TranslationRequest
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			opts := client.Options{}
			setIfNotEmpty(opts, "callback_url", callbackURL)
			setIfNotEmpty(opts, "formality", formality)
			if err := parseOptions(options, opts); err != nil {
				return err
			}

			log.Debug().Int("entries", len(entries)).Str("file", file).Msg("submitting bulk translation")

			return call(cmd, "bulk", func(ctx context.Context, c *client.Client) (*client.Response, error) {
				return c.SubmitBulkTranslation(ctx, entries, opts)
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the entries, or - for stdin")
	cmd.Flags().StringVar(&callbackURL, "callback-url", "", "Callback URL for entries without one")
	cmd.Flags().StringVar(&formality, "formality", "", "Formality for entries without one")
	cmd.Flags().StringArrayVar(&options, "option", nil, "Shared default field as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <uid>",
		Short: "Fetch a translation job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, "get", func(ctx context.Context, c *client.Client) (*client.Response, error) {
				return c.GetTranslation(ctx, args[0])
			})
		},
	}
}

func newJobsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List translation jobs in a status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, "jobs", func(ctx context.Context, c *client.Client) (*client.Response, error) {
				return c.GetJobsWithStatus(ctx, status)
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", fmt.Sprintf("Job status, one of %v", client.JobStatuses()))
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newWaitCmd() *cobra.Command {
	var interval, maxWait time.Duration

	cmd := &cobra.Command{
		Use:   "wait <uid>",
		Short: "Poll a translation job until it reaches a terminal status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid := args[0]
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), maxWait)
			defer cancel()

			var popts []poll.Option
			if interval > 0 {
				popts = append(popts, poll.WithBackOff(func() backoff.BackOff {
					return backoff.NewConstantBackOff(interval)
				}))
			}

			start := time.Now()
			resp, err := poll.UntilDone(ctx, func(ctx context.Context) (*client.Response, error) {
				reqCtx, reqCancel := context.WithTimeout(ctx, timeout)
				defer reqCancel()
				return c.GetTranslation(reqCtx, uid)
			}, popts...)

			var statusErr *poll.StatusError
			switch {
			case errors.As(err, &statusErr):
				return printResponse(cmd.OutOrStdout(), statusErr.Response)
			case err != nil:
				log.Error().Err(err).Str("uid", uid).Dur("elapsed", time.Since(start)).Msg("wait failed")
				return err
			}
			log.Debug().
				Str("uid", uid).
				Str("status", resp.Get("status").String()).
				Dur("elapsed", time.Since(start)).
				Msg("job finished")
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "Fixed delay between polls (default: exponential from 2s up to 30s)")
	cmd.Flags().DurationVar(&maxWait, "max-wait", 10*time.Minute, "Give up after this long")
	return cmd
}
