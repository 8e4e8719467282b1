// Package analytics derives the dashboard summary from workspace data.
//
// Compute is pure: the same project always yields the same summary, and
// empty collections produce zero percentages instead of dividing by zero.
package analytics

import (
	"math"
	"sort"

	"github.com/louisbranch/man3/internal/services/workspace/domain"
)

// CapabilityLevel is the heuristic process capability shown on the
// dashboard.
type CapabilityLevel int

const (
	Level1 CapabilityLevel = 1
	Level2 CapabilityLevel = 2
	Level3 CapabilityLevel = 3
)

// String renders the level the way the dashboard labels it.
func (l CapabilityLevel) String() string {
	switch l {
	case Level3:
		return "Level 3"
	case Level2:
		return "Level 2"
	default:
		return "Level 1"
	}
}

// UpcomingLimit caps the deadlines listed on the dashboard.
const UpcomingLimit = 4

// WorkProductStats summarizes work product progress.
type WorkProductStats struct {
	Total      int                              `json:"total"`
	ByStatus   map[domain.WorkProductStatus]int `json:"by_status"`
	Released   int                              `json:"released"`
	ReleasedPc int                              `json:"released_percent"`
}

// RiskStats summarizes the open part of the risk register.
type RiskStats struct {
	Open int `json:"open"`
	// OpenSevere counts open risks with High or Critical impact.
	OpenSevere   int                       `json:"open_severe"`
	OpenByImpact map[domain.RiskImpact]int `json:"open_by_impact"`
}

// ScheduleStats summarizes task progress.
type ScheduleStats struct {
	Total       int `json:"total"`
	Completed   int `json:"completed"`
	Delayed     int `json:"delayed"`
	AvgProgress int `json:"average_progress"`
	// Upcoming holds the tasks with the earliest end dates.
	Upcoming []domain.ScheduleTask `json:"upcoming"`
}

// Summary is the full dashboard view model.
type Summary struct {
	Capability   CapabilityLevel  `json:"capability"`
	WorkProducts WorkProductStats `json:"work_products"`
	Risks        RiskStats        `json:"risks"`
	Schedule     ScheduleStats    `json:"schedule"`
}

// Compute derives the dashboard summary.
func Compute(project domain.Project) Summary {
	summary := Summary{
		WorkProducts: workProductStats(project.WorkProducts),
		Risks:        riskStats(project.Risks),
		Schedule:     scheduleStats(project.Schedule),
	}
	summary.Capability = capability(summary)
	return summary
}

func workProductStats(items []domain.WorkProduct) WorkProductStats {
	stats := WorkProductStats{Total: len(items), ByStatus: make(map[domain.WorkProductStatus]int, len(domain.WorkProductStatuses))}
	for _, status := range domain.WorkProductStatuses {
		stats.ByStatus[status] = 0
	}
	for _, wp := range items {
		stats.ByStatus[wp.Status]++
	}
	stats.Released = stats.ByStatus[domain.WorkProductReleased]
	stats.ReleasedPc = percent(stats.Released, stats.Total)
	return stats
}

func riskStats(items []domain.Risk) RiskStats {
	stats := RiskStats{OpenByImpact: make(map[domain.RiskImpact]int, len(domain.RiskImpacts))}
	for _, impact := range domain.RiskImpacts {
		stats.OpenByImpact[impact] = 0
	}
	for _, risk := range items {
		if risk.Status != domain.RiskOpen {
			continue
		}
		stats.Open++
		stats.OpenByImpact[risk.Impact]++
		if risk.Impact.Severe() {
			stats.OpenSevere++
		}
	}
	return stats
}

func scheduleStats(items []domain.ScheduleTask) ScheduleStats {
	stats := ScheduleStats{Total: len(items)}
	sum := 0
	for _, task := range items {
		sum += task.ActualProgress
		if task.Completed() {
			stats.Completed++
		}
		if task.Delayed() {
			stats.Delayed++
		}
	}
	if stats.Total > 0 {
		stats.AvgProgress = int(math.Round(float64(sum) / float64(stats.Total)))
	}

	upcoming := append([]domain.ScheduleTask(nil), items...)
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].EndDate < upcoming[j].EndDate
	})
	if len(upcoming) > UpcomingLimit {
		upcoming = upcoming[:UpcomingLimit]
	}
	stats.Upcoming = upcoming
	return stats
}

func capability(s Summary) CapabilityLevel {
	wp := s.WorkProducts
	if wp.ReleasedPc > 85 && wp.Total > 5 && s.Risks.OpenSevere == 0 && s.Schedule.Delayed == 0 {
		return Level3
	}
	if wp.ReleasedPc > 50 && wp.Total > 3 {
		return Level2
	}
	return Level1
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Insight returns the assessor hint shown under the dashboard.
func (s Summary) Insight() string {
	switch {
	case s.Capability == Level3:
		return "Excellent! Your project shows strong evidence of process institutionalization. Ensure all 'Tailoring' is documented in your Project Plan."
	case s.Schedule.Delayed > 0:
		return "Process Warning: You have delayed tasks compared to the baseline plan. For Level 3 compliance, ensure you have a recorded 'Delay Reason' and an updated feasibility study (BP9)."
	default:
		return "To reach Level 3, ensure all Work Products are not just 'Done' but reviewed and released according to the Standard Process."
	}
}
