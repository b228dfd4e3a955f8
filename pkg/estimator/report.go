package estimator

import (
	"fmt"
	"io"
	"strings"

	"github.com/kcaldas/tokentally/pkg/pricing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report aggregates the result of one estimation run.
type Report struct {
	FilePath      string
	Model         string
	TotalExamples int
	TotalTokens   int64
	Epochs        int
}

// ProjectedTokens returns the multi-epoch training token projection.
func (r *Report) ProjectedTokens() int64 {
	return r.TotalTokens * int64(r.Epochs)
}

// Render writes the console report to w.
func (r *Report) Render(w io.Writer) {
	p := message.NewPrinter(language.English)
	rule := strings.Repeat("=", 42)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "GEMINI TRAINING TOKEN ESTIMATE")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "File: %s\n", r.FilePath)
	fmt.Fprintf(w, "Total Examples: %d\n", r.TotalExamples)
	p.Fprintf(w, "Total Training Tokens: %d\n", r.TotalTokens)
	p.Fprintf(w, "Estimated Tokens (%d Epochs): %d\n", r.Epochs, r.ProjectedTokens())
	if cost, ok := pricing.TrainingCost(r.Model, r.ProjectedTokens()); ok {
		p.Fprintf(w, "Estimated Training Cost: $%.2f\n", cost)
	}
	fmt.Fprintln(w, rule)
}

// FileReport is the YAML-serialized form of a report.
type FileReport struct {
	File             string   `yaml:"file"`
	Model            string   `yaml:"model"`
	TotalExamples    int      `yaml:"total_examples"`
	TotalTokens      int64    `yaml:"total_tokens"`
	Epochs           int      `yaml:"epochs"`
	ProjectedTokens  int64    `yaml:"projected_tokens"`
	EstimatedCostUSD *float64 `yaml:"estimated_cost_usd,omitempty"`
}

// FileReport converts the report into its serializable form.
func (r *Report) FileReport() FileReport {
	out := FileReport{
		File:            r.FilePath,
		Model:           r.Model,
		TotalExamples:   r.TotalExamples,
		TotalTokens:     r.TotalTokens,
		Epochs:          r.Epochs,
		ProjectedTokens: r.ProjectedTokens(),
	}
	if cost, ok := pricing.TrainingCost(r.Model, r.ProjectedTokens()); ok {
		out.EstimatedCostUSD = &cost
	}
	return out
}
