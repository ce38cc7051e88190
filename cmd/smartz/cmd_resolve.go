package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"smartz/internal/domain"
	"smartz/internal/domain/entities"
)

var (
	resolveLocale string
	resolveArgs   []string
	resolveJSON   bool
)

func initResolveCmd() {
	resolveCmd := &cobra.Command{
		Use:   "resolve <contract> <key>",
		Short: "Resolve one message",
		Long: "Resolve every field of a registered contract for a message key. " +
			"With --arg the key is enhanced and {0}, {1}, ... are replaced in order.",
		Args: cobra.ExactArgs(2),
		RunE: runResolve,
	}

	resolveCmd.Flags().StringVarP(&resolveLocale, "locale", "l", "", "locale, e.g. zh or fr-CA (default: DEFAULT_LOCALE)")
	resolveCmd.Flags().StringArrayVarP(&resolveArgs, "arg", "a", nil, "positional argument, repeatable")
	resolveCmd.Flags().BoolVarP(&resolveJSON, "json", "j", false, "print JSON")

	rootCmd.AddCommand(resolveCmd)
}

type resolvedJSON struct {
	Contract string            `json:"contract"`
	Key      string            `json:"key"`
	Locale   string            `json:"locale"`
	Fields   map[string]string `json:"fields"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	locale, err := parseLocale(resolveLocale)
	if err != nil {
		return err
	}

	var key entities.MessageKey = entities.Key(args[1])
	if len(resolveArgs) > 0 {
		positional := make([]any, len(resolveArgs))
		for i, arg := range resolveArgs {
			positional[i] = arg
		}
		key = entities.Enhance(args[1], positional...)
	}

	msg, err := a.messages.ResolveNamed(ctx, args[0], key, locale)
	if err != nil {
		if code := domain.Code(err); code != "" {
			return fmt.Errorf("%s: %w", code, err)
		}
		return err
	}

	return printResolved(cmd.OutOrStdout(), msg, resolveJSON)
}

func printResolved(w io.Writer, msg *entities.ResolvedMessage, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(resolvedJSON{
			Contract: msg.Contract().Name(),
			Key:      msg.Key(),
			Locale:   msg.Locale().String(),
			Fields:   msg.Map(),
		})
	}

	for _, f := range msg.Fields() {
		if !f.Present {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.Property, f.Text); err != nil {
			return err
		}
	}
	return nil
}
