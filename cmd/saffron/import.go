package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joshsymonds/saffron/internal/model"
	"github.com/joshsymonds/saffron/internal/ofx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import expenses from OFX/QFX files",
		Long: `Import spending records from OFX or QFX (Quicken) files exported from a bank.

Only debit entries are imported; credits such as deposits and refunds are
skipped. Examples:

  # Import a single file for a tenant
  saffron import --user alice ~/Downloads/chase_jan_2024.qfx

  # Import everything in a directory
  saffron import --user alice ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("user", "", "tenant to import expenses for (required)")
	cmd.Flags().Int64("category-id", 0, "assign every imported expense to this category")
	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user")
	categoryID, _ := cmd.Flags().GetInt64("category-id")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing OFX files...",
		"user", userID,
		"file_count", len(allFiles),
		"dry_run", dryRun)

	bar := progressbar.NewOptions(len(allFiles),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Parsing statements..."),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	parser := ofx.NewParser()
	ctx := cmd.Context()

	// Statements exported on different days overlap; dedupe on the fields
	// the bank keeps stable.
	seen := make(map[string]bool)
	var expenses []model.Expense

	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file", "file", filePath, "error", err)
			_ = bar.Add(1)
			continue
		}

		parsed, err := parser.ParseFile(ctx, f, userID)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse OFX file", "file", filePath, "error", err)
			_ = bar.Add(1)
			continue
		}

		added := 0
		for _, e := range parsed {
			key := fmt.Sprintf("%s|%s|%s", e.Vendor, e.Date.Format("2006-01-02"), e.Amount.String())
			if seen[key] {
				continue
			}
			seen[key] = true
			if categoryID > 0 {
				e.CategoryID = &categoryID
			}
			expenses = append(expenses, e)
			added++
		}

		slog.Info("Processed file",
			"file", filepath.Base(filePath),
			"expenses_found", len(parsed),
			"added", added,
			"duplicates", len(parsed)-added)
		_ = bar.Add(1)
	}

	if len(expenses) == 0 {
		slog.Warn("No expenses found in any file")
		return nil
	}

	slog.Info("Parsed statements",
		"expenses", len(expenses),
		"earliest_date", ofx.EarliestDate(expenses).Format("2006-01-02"))

	if dryRun {
		slog.Info("Dry run complete - no data saved")
		return nil
	}

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if err := store.SaveExpenses(ctx, expenses); err != nil {
		return fmt.Errorf("failed to save expenses: %w", err)
	}

	slog.Info("Import complete", "saved", len(expenses), "user", userID)
	return nil
}
