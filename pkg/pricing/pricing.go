// Package pricing holds published training prices for tuning-capable models.
package pricing

import "strings"

// USD per million training tokens. Keep in sync with the Vertex AI tuning
// price sheet; models missing here simply get no cost line in the report.
var trainingPricePerMtok = map[string]float64{
	"gemini-2.0-flash-lite": 1.50,
	"gemini-2.0-flash":      3.00,
	"gemini-1.5-flash":      2.00,
	"gemini-1.5-pro":        8.00,
}

// TrainingPricePerMtok returns the per-million-token training price for the
// model, matching by the longest known model prefix so versioned identifiers
// like gemini-2.0-flash-001 resolve to their family price.
func TrainingPricePerMtok(model string) (float64, bool) {
	var (
		bestLen   int
		bestPrice float64
		found     bool
	)
	for prefix, price := range trainingPricePerMtok {
		if strings.HasPrefix(model, prefix) && len(prefix) > bestLen {
			bestLen = len(prefix)
			bestPrice = price
			found = true
		}
	}
	return bestPrice, found
}

// TrainingCost returns the estimated USD cost of training on the given
// number of tokens, when the model's price is known.
func TrainingCost(model string, tokens int64) (float64, bool) {
	price, ok := TrainingPricePerMtok(model)
	if !ok {
		return 0, false
	}
	return float64(tokens) / 1_000_000 * price, true
}
