// Package summary computes the client/property financial summary from a
// project's items and transactions. Everything here is pure: callers fetch,
// summary folds.
package summary

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Item is the slice of an item the summary needs. Price fields are the raw
// entered strings; missing or unparseable values count as zero.
type Item struct {
	ID            string
	TransactionID string
	ProjectPrice  string
	MarketValue   string
}

// Transaction is the slice of a transaction the summary needs.
type Transaction struct {
	ID                string
	ProjectID         string
	CategoryID        string
	BudgetCategory    string
	ReimbursementType string
	SystemRef         string
	ReceiptImageURLs  []string
}

// Summary is the computed client/property rollup.
type Summary struct {
	TotalSpent        decimal.Decimal
	CategoryBreakdown map[string]decimal.Decimal
	TotalMarketValue  decimal.Decimal
	TotalSaved        decimal.Decimal
}

// Compute folds items and transactions into totals.
//
// TotalSpent sums every item's project price. The category breakdown
// attributes each line item's project price to its transaction's budget
// category, for transactions whose category resolves and which have at least
// one item. TotalSaved counts only items with a positive market value,
// crediting marketValue - projectPrice each; items without a market value
// contribute nothing regardless of price.
func Compute(items []Item, transactions []Transaction, categoryNames map[string]string) Summary {
	result := Summary{
		TotalSpent:        decimal.Zero,
		CategoryBreakdown: make(map[string]decimal.Decimal),
		TotalMarketValue:  decimal.Zero,
		TotalSaved:        decimal.Zero,
	}

	itemsByTransaction := make(map[string][]Item)
	for _, item := range items {
		projectPrice := parseAmount(item.ProjectPrice)
		marketValue := parseAmount(item.MarketValue)

		result.TotalSpent = result.TotalSpent.Add(projectPrice)
		result.TotalMarketValue = result.TotalMarketValue.Add(marketValue)
		if marketValue.IsPositive() {
			result.TotalSaved = result.TotalSaved.Add(marketValue.Sub(projectPrice))
		}

		if item.TransactionID != "" {
			itemsByTransaction[item.TransactionID] = append(itemsByTransaction[item.TransactionID], item)
		}
	}

	for _, transaction := range transactions {
		categoryName := resolveCategoryName(transaction, categoryNames)
		if categoryName == "" {
			continue
		}
		owned := itemsByTransaction[transaction.ID]
		if len(owned) == 0 {
			continue
		}
		subtotal := result.CategoryBreakdown[categoryName]
		for _, item := range owned {
			subtotal = subtotal.Add(parseAmount(item.ProjectPrice))
		}
		result.CategoryBreakdown[categoryName] = subtotal
	}

	return result
}

// resolveCategoryName prefers the explicit category-id lookup and falls back
// to the free-text budget category carried on the transaction itself. Both
// data models are live; whichever resolves wins.
func resolveCategoryName(transaction Transaction, categoryNames map[string]string) string {
	if transaction.CategoryID != "" {
		if name, ok := categoryNames[transaction.CategoryID]; ok && name != "" {
			return name
		}
	}
	return transaction.BudgetCategory
}

// parseAmount parses a user-entered money string, tolerating currency
// symbols and thousands separators. Anything unparseable is exactly zero.
func parseAmount(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
