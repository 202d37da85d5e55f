package dashboard

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wonny/spacexdash/backend/internal/contracts"
)

var printer = message.NewPrinter(language.English)

// FormatKg truncates kg to an integer and groups thousands ("10,000").
// Display only; filtering keeps the real-valued bound.
func FormatKg(kg float64) string {
	return printer.Sprintf("%d", int64(kg))
}

func pieTitle(site string) string {
	if site == contracts.AllSites {
		return "Landing Success Counts by Launch Site"
	}
	return fmt.Sprintf("Landing Success Counts for Launch Site %s", site)
}

func scatterTitle(site string, low, high float64) string {
	if site == contracts.AllSites {
		return fmt.Sprintf("Correlation between Payload and Success for ALL Sites between %skg and %skg",
			FormatKg(low), FormatKg(high))
	}
	return fmt.Sprintf("Correlation between Payload and Success for Launch Site %s - payload between %skg and %skg",
		site, FormatKg(low), FormatKg(high))
}
