package domain

import "strings"

const (
	// MinProgress and MaxProgress bound schedule progress percentages.
	MinProgress = 0
	MaxProgress = 100
)

// ClampProgress bounds a percentage to [MinProgress, MaxProgress].
func ClampProgress(value int) int {
	if value < MinProgress {
		return MinProgress
	}
	if value > MaxProgress {
		return MaxProgress
	}
	return value
}

// NormalizeWorkProduct maps enum fields to known values.
func NormalizeWorkProduct(wp WorkProduct) WorkProduct {
	wp.ID = strings.TrimSpace(wp.ID)
	wp.Type = ParseWorkProductType(string(wp.Type))
	wp.Status = ParseWorkProductStatus(string(wp.Status))
	return wp
}

// NormalizeRisk maps enum fields to known values.
func NormalizeRisk(risk Risk) Risk {
	risk.ID = strings.TrimSpace(risk.ID)
	risk.Impact = ParseRiskImpact(string(risk.Impact))
	risk.Probability = ParseRiskProbability(string(risk.Probability))
	risk.Status = ParseRiskStatus(string(risk.Status))
	return risk
}

// NormalizeTask clamps both progress percentages.
func NormalizeTask(task ScheduleTask) ScheduleTask {
	task.ID = strings.TrimSpace(task.ID)
	task.ExpectedProgress = ClampProgress(task.ExpectedProgress)
	task.ActualProgress = ClampProgress(task.ActualProgress)
	return task
}
