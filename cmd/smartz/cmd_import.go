package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"smartz/internal/infrastructure/database"
	"smartz/internal/infrastructure/i18n"
	"smartz/internal/ports/output"
)

var importLocales []string

func initImportCmd() {
	importCmd := &cobra.Command{
		Use:   "import <bundle>",
		Short: "Copy resource tables from BUNDLE_DIR into PostgreSQL",
		Long: "Copy the base table of a bundle, and the table of every --locale, from BUNDLE_DIR " +
			"into the message_resources table. Existing keys are overwritten.",
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	importCmd.Flags().StringSliceVarP(&importLocales, "locale", "l", nil, "locales to import besides the base table")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	if a.pool == nil {
		return errors.New("import: DATABASE_URL is not set")
	}

	locales := []language.Tag{language.Und}
	for _, raw := range importLocales {
		tag, err := parseLocale(raw)
		if err != nil {
			return err
		}
		locales = append(locales, tag)
	}

	bundle := args[0]
	files := i18n.NewDirSource(a.cfg.BundleDir)
	target := database.NewPostgresSource(a.pool)

	imported := 0
	for _, locale := range locales {
		table, err := files.LoadTable(ctx, bundle, locale)
		if errors.Is(err, output.ErrTableNotFound) {
			a.logger.Warn("import: no table", "bundle", bundle, "locale", locale.String(), "dir", a.cfg.BundleDir)
			continue
		}
		if err != nil {
			return err
		}
		if err := target.ImportTable(ctx, bundle, locale, table); err != nil {
			return err
		}
		imported++
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d entries\n", bundle, displayLocale(locale), len(table))
	}
	if imported == 0 {
		return fmt.Errorf("import: no table found for bundle %s in %s", bundle, a.cfg.BundleDir)
	}
	return nil
}

func displayLocale(tag language.Tag) string {
	if tag.IsRoot() {
		return "root"
	}
	return tag.String()
}
