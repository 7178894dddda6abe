package charts

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Ellipsis is the pagination token standing in for an elided page range.
const Ellipsis = -1

// yAxisLabelCount is the fixed number of labels on the revenue chart Y axis.
const yAxisLabelCount = 5

var ErrInvalidDate = errors.New("invalid date")

// monthLayout is the year-month key format used by the revenue aggregation
// query ("2006-01").
const monthLayout = "2006-01"

// acceptedDateLayouts are tried in order by FormatDateToLocal.
var acceptedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatCurrency renders an amount in integer cents as a US dollar string
// with thousands grouping, e.g. 150000 -> "$1,500.00".
func FormatCurrency(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	dollars := cents / 100
	remainder := cents % 100

	formatted := fmt.Sprintf("$%s.%02d", groupThousands(dollars), remainder)
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatDateToLocal renders an ISO date or timestamp as "Jan 2, 2006".
// Unparseable input returns ErrInvalidDate rather than a sentinel string, so
// callers cannot silently display garbage.
func FormatDateToLocal(value string) (string, error) {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// GenerateYAxis computes the labels for the revenue chart Y axis.
// The top label is the smallest multiple of 1000 at or above the highest
// revenue in the series; five labels run from the top down to $0, spaced by
// topLabel/4 and rounded independently.
func GenerateYAxis(series []MonthlyRevenue) ([]string, int) {
	var highest float64
	for _, m := range series {
		if m.Revenue > highest {
			highest = m.Revenue
		}
	}

	topLabel := int(math.Ceil(highest/1000) * 1000)

	labels := make([]string, 0, yAxisLabelCount)
	step := float64(topLabel) / float64(yAxisLabelCount-1)
	for i := 0; i < yAxisLabelCount; i++ {
		value := math.Round(float64(topLabel) - step*float64(i))
		labels = append(labels, fmt.Sprintf("$%d", int(value)))
	}

	return labels, topLabel
}

// GeneratePagination returns the window of page tokens for a bounded-width
// pager. Tokens are page numbers, with Ellipsis marking elided ranges. The
// result never exceeds seven tokens.
func GeneratePagination(currentPage, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	// Seven pages or fewer fit without elision.
	if totalPages <= 7 {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	// Near the start: first three pages, then the last two.
	if currentPage <= 3 {
		return []int{1, 2, 3, Ellipsis, totalPages - 1, totalPages}
	}

	// Near the end: first two pages, then the last three.
	if currentPage >= totalPages-2 {
		return []int{1, 2, Ellipsis, totalPages - 2, totalPages - 1, totalPages}
	}

	// Somewhere in the middle: the current page and its neighbors, bracketed
	// by the first and last page.
	return []int{1, Ellipsis, currentPage - 1, currentPage, currentPage + 1, Ellipsis, totalPages}
}

// FormatPagination renders a pagination window as display strings, mapping
// the Ellipsis token to "...".
func FormatPagination(window []int) []string {
	tokens := make([]string, len(window))
	for i, page := range window {
		if page == Ellipsis {
			tokens[i] = "..."
		} else {
			tokens[i] = fmt.Sprintf("%d", page)
		}
	}
	return tokens
}

// LastTwelveMonths reconstructs the trailing 12-month revenue series ending
// at now's calendar month, oldest first. Months missing from the raw rows are
// zero-filled. Revenue is converted from cents to dollars and month keys to
// 3-letter labels. Every entry carries the supplied owner ID, matched or not.
func LastTwelveMonths(raw []RevenueRow, userID string, now time.Time) []MonthlyRevenue {
	byKey := make(map[string]RevenueRow, len(raw))
	for _, row := range raw {
		byKey[row.Month] = row
	}

	series := make([]MonthlyRevenue, 0, 12)
	for i := 11; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		key := month.Format(monthLayout)

		var revenue float64
		if row, ok := byKey[key]; ok {
			revenue = float64(row.RevenueCents) / 100
		}

		series = append(series, MonthlyRevenue{
			Month:   month.Format("Jan"),
			Revenue: revenue,
			UserID:  userID,
		})
	}

	return series
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
