package output

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

func init() {
	// Downstream serializers consume currency fields as plain JSON
	// numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// JSONFormatter serializes the full report as pretty-printed JSON. The
// field names are the literal CRA line keys consumed by external tooling.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.T2125Data) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
