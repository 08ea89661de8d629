package recorder

import "dcalab/pkg/model"

// Recorder persists analysis runs for later inspection. Engines never touch
// it; the CLI records results after a run completes.
type Recorder interface {
	RecordComparison(runID string, cmp *model.ComparisonResult) error
	RecordRiskScores(runID string, scores []model.RiskScore) error
	Close() error
}
