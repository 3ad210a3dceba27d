package controllers

import (
	"fmt"
	"strings"

	"ai-need-analyzer/internal/models"
)

// FormatSummary renders the single-industry result text.
func FormatSummary(summary models.IndustrySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Selected industry] %s\n\n", summary.Industry)
	fmt.Fprintf(&b, "- Average \"need\" share: %.1f%%\n", summary.MeanNeed)
	fmt.Fprintf(&b, "- Average \"no need\" share: %.1f%%\n\n", summary.MeanNoNeed)
	fmt.Fprintf(&b, "[Interpretation]\nNeed level: %s.\n", summary.Level)
	return b.String()
}

// FormatComparison renders one line per industry in the given order.
func FormatComparison(summaries []models.IndustrySummary) string {
	var b strings.Builder
	b.WriteString("[Average AI need share by industry]\n\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "- %s: need %.1f%%, no need %.1f%%\n", s.Industry, s.MeanNeed, s.MeanNoNeed)
	}
	return b.String()
}
