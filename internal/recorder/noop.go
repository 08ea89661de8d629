package recorder

import "dcalab/pkg/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordComparison(_ string, _ *model.ComparisonResult) error { return nil }
func (n *NoopRecorder) RecordRiskScores(_ string, _ []model.RiskScore) error       { return nil }
func (n *NoopRecorder) Close() error                                               { return nil }
