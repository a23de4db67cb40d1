package applications

import (
	"context"
	"sort"
)

const topListSize = 5

// NameCount pairs a grouping value with how often it occurs.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MonthCount is the number of applications submitted in one calendar month.
type MonthCount struct {
	Month string `json:"month"` // "2006-01"
	Count int    `json:"count"`
}

// Analytics summarizes the tracked applications.
type Analytics struct {
	Total        int            `json:"total"`
	StatusCounts map[string]int `json:"status_counts"`
	Monthly      []MonthCount   `json:"monthly"`
	TopCompanies []NameCount    `json:"top_companies"`
	TopPositions []NameCount    `json:"top_positions"`
	Weekdays     map[string]int `json:"weekdays"`
}

// ComputeAnalytics aggregates all stored applications. The data set is one
// person's job search, so aggregating in memory is fine.
func ComputeAnalytics(ctx context.Context, repo Repo) (Analytics, error) {
	apps, err := repo.List(ctx)
	if err != nil {
		return Analytics{}, err
	}

	a := Analytics{
		Total:        len(apps),
		StatusCounts: make(map[string]int),
		Weekdays:     make(map[string]int),
	}
	monthly := make(map[string]int)
	companies := make(map[string]int)
	positions := make(map[string]int)
	for _, app := range apps {
		a.StatusCounts[string(app.Status)]++
		if !app.AppliedOn.IsZero() {
			monthly[app.AppliedOn.Format("2006-01")]++
			a.Weekdays[app.AppliedOn.Weekday().String()]++
		}
		if app.Company != "" {
			companies[app.Company]++
		}
		if app.Position != "" {
			positions[app.Position]++
		}
	}

	a.Monthly = sortedMonths(monthly)
	a.TopCompanies = topCounts(companies, topListSize)
	a.TopPositions = topCounts(positions, topListSize)
	return a, nil
}

func sortedMonths(counts map[string]int) []MonthCount {
	out := make([]MonthCount, 0, len(counts))
	for month, count := range counts {
		out = append(out, MonthCount{Month: month, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// topCounts returns the n most frequent names, breaking ties alphabetically
// so the output is stable.
func topCounts(counts map[string]int, n int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
