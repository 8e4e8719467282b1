package domain

// ProjectInfo describes the project under management.
type ProjectInfo struct {
	Name        string `json:"name"`
	Manager     string `json:"manager"`
	Customer    string `json:"customer"`
	StartDate   string `json:"start_date"`
	Description string `json:"description"`
}

// WorkProduct is one tracked deliverable.
type WorkProduct struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Type   WorkProductType   `json:"type"`
	Status WorkProductStatus `json:"status"`
	Owner  string            `json:"owner"`
}

// Risk is one entry of the risk register.
type Risk struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	Impact         RiskImpact      `json:"impact"`
	Probability    RiskProbability `json:"probability"`
	Status         RiskStatus      `json:"status"`
	MitigationPlan string          `json:"mitigation_plan"`
}

// ScheduleTask is one line of the project schedule.
type ScheduleTask struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// ExpectedProgress is the planned completion percentage for today.
	ExpectedProgress int `json:"expected_progress"`
	// ActualProgress is the reported completion percentage.
	ActualProgress int    `json:"actual_progress"`
	DelayReason    string `json:"delay_reason"`
	AssignedTo     string `json:"assigned_to"`
}

// Delayed reports whether actual progress trails the plan.
func (t ScheduleTask) Delayed() bool {
	return t.ActualProgress < t.ExpectedProgress
}

// Completed reports whether the task is fully done.
func (t ScheduleTask) Completed() bool {
	return t.ActualProgress == MaxProgress
}

// Project is the whole workspace.
type Project struct {
	Info         ProjectInfo    `json:"info"`
	WorkProducts []WorkProduct  `json:"work_products"`
	Risks        []Risk         `json:"risks"`
	Schedule     []ScheduleTask `json:"schedule"`
}
