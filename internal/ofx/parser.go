// Package ofx parses OFX/QFX bank statements into expense records.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/google/uuid"
	"github.com/joshsymonds/saffron/internal/merchant"
	"github.com/joshsymonds/saffron/internal/model"
	"github.com/shopspring/decimal"
)

// Parser implements OFX/QFX statement parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Mixed-case SEVERITY values must be INFO, WARN, or ERROR
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML-style files sometimes drop the closing angle bracket on a tag
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX statement for one tenant, returning the debit
// entries as expenses. Credits (deposits, refunds, payments received) are
// skipped: only spending is imported.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader, userID string) ([]model.Expense, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var expenses []model.Expense
	var bankStmts, ccStmts, skippedCredits int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			exp, skipped := p.convertTransactions(stmt.BankTranList.Transactions, userID)
			expenses = append(expenses, exp...)
			skippedCredits += skipped
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			exp, skipped := p.convertTransactions(stmt.BankTranList.Transactions, userID)
			expenses = append(expenses, exp...)
			skippedCredits += skipped
		}
	}

	slog.Info("Parsed OFX file",
		"expenses", len(expenses),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts,
		"skipped_credits", skippedCredits)

	return expenses, nil
}

// convertTransactions maps OFX transactions to expenses, dropping credits.
func (p *Parser) convertTransactions(txns []ofxgo.Transaction, userID string) ([]model.Expense, int) {
	var expenses []model.Expense
	skipped := 0

	for _, ofxTx := range txns {
		// OFX uses negative amounts for debits
		amountFloat, _ := ofxTx.TrnAmt.Float64()
		amount := decimal.NewFromFloat(amountFloat).Round(2)
		if !amount.IsNegative() {
			skipped++
			continue
		}

		vendor := p.extractVendor(ofxTx)
		expenses = append(expenses, model.Expense{
			ID:          uuid.NewString(),
			UserID:      userID,
			Vendor:      vendor,
			Description: strings.TrimSpace(string(ofxTx.Memo)),
			Amount:      amount.Neg(),
			Date:        ofxTx.DtPosted.Time,
		})
	}

	return expenses, skipped
}

// extractVendor pulls the cleanest merchant name the statement offers.
func (p *Parser) extractVendor(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if name == "" {
		name = strings.TrimSpace(string(tx.Memo))
	}

	if normalized := merchant.NormalizeVendor(name); normalized == "" {
		return "Unknown"
	}

	return name
}

// EarliestDate returns the oldest expense date in a parsed batch, used for
// import reporting.
func EarliestDate(expenses []model.Expense) time.Time {
	var earliest time.Time
	for _, e := range expenses {
		if earliest.IsZero() || e.Date.Before(earliest) {
			earliest = e.Date
		}
	}
	return earliest
}
