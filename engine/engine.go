package engine

import "pandemic/experiments/metrics"

type Engine interface {
	// Run plays a game till it is won or lost or the step cap is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
