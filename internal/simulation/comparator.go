package simulation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/keiba-backtest/internal/fund"
	"github.com/yourusername/keiba-backtest/internal/models"
	"github.com/yourusername/keiba-backtest/internal/strategy"
)

// ComparisonEntry names one (strategy, fund manager) pair to compare.
type ComparisonEntry struct {
	Name        string
	Strategy    strategy.Strategy
	FundManager *fund.Manager
}

// Comparator runs several pairs over the same races and initial fund.
// Every pair gets its own engine, so runs are fully isolated: no shared
// mutable state and no fund leakage between entries.
type Comparator struct {
	logger *logrus.Logger
}

// NewComparator creates a comparator.
func NewComparator(logger *logrus.Logger) *Comparator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Comparator{logger: logger}
}

// Compare runs every entry and returns results keyed by entry name.
func (c *Comparator) Compare(races []*models.Race, initialFund int, entries []ComparisonEntry) (map[string]*models.SimulationResult, error) {
	results := make(map[string]*models.SimulationResult, len(entries))

	for _, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("comparison entry requires a name")
		}
		if _, exists := results[entry.Name]; exists {
			return nil, fmt.Errorf("duplicate comparison entry %q", entry.Name)
		}

		engine, err := NewEngine(entry.Strategy, entry.FundManager, c.logger)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", entry.Name, err)
		}

		c.logger.WithField("entry", entry.Name).Debug("Running comparison entry")
		results[entry.Name] = engine.RunSimple(races, initialFund)
	}

	return results, nil
}

// SummaryRow flattens one result's key metrics for ranking.
type SummaryRow struct {
	Name        string  `json:"name"`
	FinalFund   int     `json:"final_fund"`
	TotalBets   int     `json:"total_bets"`
	HitRate     float64 `json:"hit_rate"`
	ROI         float64 `json:"roi"`
	MaxDrawdown float64 `json:"max_drawdown"`
	SharpeRatio float64 `json:"sharpe_ratio"`
	IsGo        bool    `json:"is_go"`
}

// Summarize flattens comparison results into rows ordered by ROI, best
// first.
func Summarize(results map[string]*models.SimulationResult) []SummaryRow {
	rows := make([]SummaryRow, 0, len(results))
	for name, result := range results {
		row := SummaryRow{Name: name, FinalFund: result.FinalFund}
		if result.Metrics != nil {
			row.TotalBets = result.Metrics.TotalBets
			row.HitRate = result.Metrics.HitRate
			row.ROI = result.Metrics.ROI
			row.MaxDrawdown = result.Metrics.MaxDrawdown
			row.SharpeRatio = result.Metrics.SharpeRatio
			row.IsGo = result.Metrics.IsGo
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ROI != rows[j].ROI {
			return rows[i].ROI > rows[j].ROI
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// RenderSummary formats summary rows as a text table.
func RenderSummary(rows []SummaryRow) string {
	var buf strings.Builder

	table := tablewriter.NewWriter(&buf)
	table.Header("Name", "Final", "Bets", "Hit%", "ROI%", "MaxDD%", "Sharpe", "Go")

	for _, row := range rows {
		verdict := "NO-GO"
		if row.IsGo {
			verdict = "GO"
		}
		table.Append(
			row.Name,
			fmt.Sprintf("%d", row.FinalFund),
			fmt.Sprintf("%d", row.TotalBets),
			fmt.Sprintf("%.1f", row.HitRate),
			fmt.Sprintf("%.1f", row.ROI),
			fmt.Sprintf("%.1f", row.MaxDrawdown),
			fmt.Sprintf("%.2f", row.SharpeRatio),
			verdict,
		)
	}
	table.Render()

	return buf.String()
}
