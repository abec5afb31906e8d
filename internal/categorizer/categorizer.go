// Package categorizer assigns category labels to transactions using an
// ordered list of keyword rules. Matching is a best-effort heuristic: a rule
// list is walked first-match-wins over the upper-cased description, and when
// nothing matches a kind-specific default is used. Categorization never
// fails, so callers get a label unconditionally and users correct mistakes
// after import.
package categorizer

import (
	"strings"

	"abenov/kaspi-import/internal/config"
	"abenov/kaspi-import/internal/models"

	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Default category labels per transaction kind.
const (
	DefaultIncomeCategory  = "Пополнение"
	DefaultExpenseCategory = "Покупки"
	DefaultCategory        = "Прочее"
)

// ExpenseVocabulary and IncomeVocabulary are the closed per-kind category
// lists offered when editing transactions by hand. The classifier may also
// emit the rule labels below; both are valid category values on a
// transaction. Use VocabularyFor to read them.
var (
	ExpenseVocabulary = []string{"Groceries", "Transport", "Housing", "Entertainment", "Health", "Education", "Dining Out", "Clothing", "Other"}
	IncomeVocabulary  = []string{"Salary", "Freelance", "Gifts", "Investments", "Sales", "Refunds", "Other"}
)

// VocabularyFor returns a copy of the category vocabulary for the given
// transaction kind.
func VocabularyFor(kind models.TransactionKind) []string {
	if kind == models.KindIncome {
		return append([]string{}, IncomeVocabulary...)
	}
	return append([]string{}, ExpenseVocabulary...)
}

// Rule maps a set of merchant keywords to a category. Rules are evaluated
// in slice order and the first rule with any matching keyword wins, so
// broader rules must come after specific ones.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Categorizer evaluates an ordered rule list against transaction
// descriptions.
type Categorizer struct {
	rules []Rule
}

// New creates a Categorizer with the built-in rule set.
func New() *Categorizer {
	return &Categorizer{rules: builtinRules()}
}

// NewWithRules creates a Categorizer that tries the given rules, in order,
// ahead of the built-in set.
func NewWithRules(rules []Rule) *Categorizer {
	return &Categorizer{rules: append(append([]Rule{}, rules...), builtinRules()...)}
}

// Rules returns the rule list in evaluation order.
func (c *Categorizer) Rules() []Rule {
	return c.rules
}

// Categorize returns the category label for a transaction description and
// kind. It always produces a label and has no error channel.
func (c *Categorizer) Categorize(description string, kind models.TransactionKind) string {
	upper := strings.ToUpper(description)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(upper, strings.ToUpper(keyword)) {
				log.WithFields(logrus.Fields{
					"description": description,
					"keyword":     keyword,
					"category":    rule.Category,
				}).Debug("Transaction categorized by keyword rule")
				return rule.Category
			}
		}
	}

	return defaultFor(kind)
}

// CategorizeTransaction fills in the category of a transaction in place.
func (c *Categorizer) CategorizeTransaction(tx *models.Transaction) {
	tx.Category = c.Categorize(tx.Description, tx.Kind)
}

func defaultFor(kind models.TransactionKind) string {
	switch kind {
	case models.KindIncome:
		return DefaultIncomeCategory
	case models.KindExpense:
		return DefaultExpenseCategory
	}
	return DefaultCategory
}
