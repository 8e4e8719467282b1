package domain

import "time"

const (
	defaultWorkProductName  = "New Work Product"
	defaultWorkProductOwner = "PM"
	defaultRiskDescription  = "New Identified Risk"
	defaultMitigationPlan   = "TBD"
	defaultTaskName         = "New Task"
	defaultTaskAssignee     = "Team"
)

// DateLayout is the calendar date format used for project and task dates.
const DateLayout = "2006-01-02"

// NewWorkProduct returns the row added by "add work product"; the owner
// defaults to the project manager.
func NewWorkProduct(id string, info ProjectInfo) WorkProduct {
	owner := info.Manager
	if owner == "" {
		owner = defaultWorkProductOwner
	}
	return WorkProduct{
		ID:     id,
		Name:   defaultWorkProductName,
		Type:   WorkProductPlan,
		Status: WorkProductDraft,
		Owner:  owner,
	}
}

// NewRisk returns the row added by "add risk".
func NewRisk(id string) Risk {
	return Risk{
		ID:             id,
		Description:    defaultRiskDescription,
		Impact:         RiskImpactMedium,
		Probability:    RiskProbabilityMedium,
		Status:         RiskOpen,
		MitigationPlan: defaultMitigationPlan,
	}
}

// NewTask returns the row added by "add task", spanning today.
func NewTask(id string, now time.Time) ScheduleTask {
	today := now.Format(DateLayout)
	return ScheduleTask{
		ID:         id,
		Name:       defaultTaskName,
		StartDate:  today,
		EndDate:    today,
		AssignedTo: defaultTaskAssignee,
	}
}

// SampleProject is the workspace every new process starts with.
func SampleProject(now time.Time) Project {
	return Project{
		Info: ProjectInfo{
			Name:        "Cluster Instrument NextGen",
			Manager:     "John Doe",
			Customer:    "AutoGlobal Inc.",
			StartDate:   now.Format(DateLayout),
			Description: "Next generation digital instrument cluster with ASPICE L3 compliance requirements.",
		},
		WorkProducts: []WorkProduct{
			{ID: "1", Name: "Project Management Plan", Type: WorkProductPlan, Status: WorkProductBaselined, Owner: "John Doe"},
			{ID: "2", Name: "Risk Management Plan", Type: WorkProductPlan, Status: WorkProductInReview, Owner: "Jane Smith"},
			{ID: "3", Name: "Project Schedule", Type: WorkProductPlan, Status: WorkProductDraft, Owner: "John Doe"},
		},
		Risks: []Risk{
			{ID: "1", Description: "Supplier delay on chipset delivery", Impact: RiskImpactHigh, Probability: RiskProbabilityMedium, Status: RiskOpen, MitigationPlan: "Identify second source"},
			{ID: "2", Description: "L3 Compliance Gap in QA", Impact: RiskImpactMedium, Probability: RiskProbabilityLow, Status: RiskMitigated, MitigationPlan: "Hire external consultant"},
		},
		Schedule: []ScheduleTask{
			{ID: "1", Name: "Project Kickoff", StartDate: "2023-10-25", EndDate: "2023-11-01", ExpectedProgress: 100, ActualProgress: 100, AssignedTo: "PM"},
			{ID: "2", Name: "Requirement Freeze", StartDate: "2023-11-01", EndDate: "2023-12-15", ExpectedProgress: 100, ActualProgress: 60, DelayReason: "Customer delayed approval of HMI spec", AssignedTo: "Sys Eng"},
			{ID: "3", Name: "Architecture Review", StartDate: "2024-01-05", EndDate: "2024-01-20", ExpectedProgress: 20, ActualProgress: 0, DelayReason: "Waiting for Requirement Freeze", AssignedTo: "Arch"},
		},
	}
}
