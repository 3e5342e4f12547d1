package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joshsymonds/saffron/internal/merchant"
	"github.com/joshsymonds/saffron/internal/model"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage merchant categorization rules",
		Long: `Manage the per-tenant rules that map vendor strings to categories.

Rules are evaluated in priority order (then by match count); the first
rule whose pattern matches a vendor wins.`,
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesAddCmd())
	cmd.AddCommand(rulesTestCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a tenant's merchant rules in match order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, _ := cmd.Flags().GetString("user")

			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rules, err := store.GetMerchantRules(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("failed to list rules: %w", err)
			}

			if len(rules) == 0 {
				fmt.Println("No merchant rules defined.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPATTERN\tTYPE\tPRIORITY\tMATCHES\tCATEGORY")
			for _, r := range rules {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
					r.ID, r.MerchantPattern, r.MatchType, r.Priority, r.MatchCount, r.CategoryName)
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("user", "", "tenant whose rules to list (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func rulesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a merchant rule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, _ := cmd.Flags().GetString("user")
			pattern, _ := cmd.Flags().GetString("pattern")
			matchType, _ := cmd.Flags().GetString("match-type")
			priority, _ := cmd.Flags().GetInt("priority")
			categoryID, _ := cmd.Flags().GetInt64("category-id")
			displayName, _ := cmd.Flags().GetString("display-name")

			rule := &model.MerchantRule{
				UserID:            userID,
				MerchantPattern:   pattern,
				MatchType:         model.MatchType(matchType),
				Priority:          priority,
				CategoryID:        categoryID,
				VendorDisplayName: displayName,
				IsActive:          true,
			}
			if !rule.MatchType.Valid() {
				return fmt.Errorf("invalid match type %q (want exact, starts_with, or contains)", matchType)
			}

			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.CreateMerchantRule(cmd.Context(), rule); err != nil {
				return fmt.Errorf("failed to create rule: %w", err)
			}

			fmt.Printf("Created rule %d: %s (%s) -> category %d\n",
				rule.ID, rule.MerchantPattern, rule.MatchType, rule.CategoryID)
			return nil
		},
	}

	cmd.Flags().String("user", "", "tenant to add the rule for (required)")
	cmd.Flags().String("pattern", "", "merchant pattern to match (required)")
	cmd.Flags().String("match-type", string(model.MatchContains), "comparison: exact, starts_with, contains")
	cmd.Flags().Int("priority", 0, "rule priority; higher wins")
	cmd.Flags().Int64("category-id", 0, "category to assign on match (required)")
	cmd.Flags().String("display-name", "", "clean vendor name to show instead of the raw string")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pattern")
	_ = cmd.MarkFlagRequired("category-id")

	return cmd
}

func rulesTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [vendor]",
		Short: "Test which rule a vendor string would match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")

			store, err := openStorage()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rules, err := store.GetMerchantRules(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("failed to load rules: %w", err)
			}

			rule := merchant.FirstMatch(args[0], rules)
			if rule == nil {
				fmt.Printf("No rule matches %q\n", args[0])
				return nil
			}

			fmt.Printf("Rule %d (%s %s, priority %d) -> %s\n",
				rule.ID, rule.MatchType, rule.MerchantPattern, rule.Priority, rule.CategoryName)
			return nil
		},
	}

	cmd.Flags().String("user", "", "tenant whose rules to evaluate (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
