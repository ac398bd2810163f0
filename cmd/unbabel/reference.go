package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/unbabel/tapi/client"
)

func newXliffSubmitCmd() *cobra.Command {
	var file, target, callbackURL string
	var options []string

	cmd := &cobra.Command{
		Use:   "xliff-submit",
		Short: "Submit an XLIFF document for translation",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			opts := client.Options{}
			setIfNotEmpty(opts, "callback_url", callbackURL)
			if err := parseOptions(options, opts); err != nil {
				return err
			}
			return call(cmd, "xliff-submit", func(ctx context.Context, c *client.Client) (*client.Response, error) {
				return c.SubmitXliffOrder(ctx, string(content), target, opts)
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "XLIFF file, or - for stdin")
	cmd.Flags().StringVar(&target, "target", "", "Target language code")
	cmd.Flags().StringVar(&callbackURL, "callback-url", "", "URL notified when the order changes status")
	cmd.Flags().StringArrayVar(&options, "option", nil, "Extra request field as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newXliffGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xliff-get <uid>",
		Short: "Fetch an XLIFF order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, "xliff-get", func(ctx context.Context, c *client.Client) (*client.Response, error) {
				return c.GetXliffOrder(ctx, args[0])
			})
		},
	}
}

func newLanguagePairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "language-pairs",
		Short: "List supported language pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, "language-pairs", func(ctx context.Context, c *client.Client) (*client.Response, error) {
				return c.GetLanguagePairs(ctx)
			})
		},
	}
}

func newTonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tones",
		Short: "List available tones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, "tones", func(ctx context.Context, c *client.Client) (*client.Response, error) {
				return c.GetTones(ctx)
			})
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List available topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, "topics", func(ctx context.Context, c *client.Client) (*client.Response, error) {
				return c.GetTopics(ctx)
			})
		},
	}
}

func newWordCountCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "word-count",
		Short: "Count the words of a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, "word-count", func(ctx context.Context, c *client.Client) (*client.Response, error) {
				return c.GetWordCount(ctx, text)
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Text to count")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}
