package bfsim

import (
	"fmt"
)

// JournalMetrics holds aggregate figures over journaled runs.
type JournalMetrics struct {
	Total                   uint
	Halted                  uint
	Failed                  uint
	AvgInstructionsExecuted float64
	MaxInstructionsExecuted uint
}

// QueryMetrics aggregates all runs, or only those from source when it is not
// empty.
func (p *Persistence) QueryMetrics(source string) (*JournalMetrics, error) {
	query := p.DB.Model(&Run{}).Select(`COUNT(*), COALESCE(SUM(halted), 0),
		COALESCE(AVG(instructions_executed), 0), COALESCE(MAX(instructions_executed), 0)`)
	if source != "" {
		query = query.Where("source = ?", source)
	}

	row := query.Row()

	var count, halted, most int64
	var avg float64
	if err := row.Scan(&count, &halted, &avg, &most); err != nil {
		return nil, fmt.Errorf("Failed to query journal metrics: %w", err)
	}

	return &JournalMetrics{
		Total:                   uint(count),
		Halted:                  uint(halted),
		Failed:                  uint(count - halted),
		AvgInstructionsExecuted: avg,
		MaxInstructionsExecuted: uint(most),
	}, nil
}
