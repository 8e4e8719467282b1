// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	Health       = "/up"
	StaticPrefix = "/static/"
	AppPrefix    = "/app/"

	AppDashboard    = "/app/dashboard"
	DashboardPrefix = "/app/dashboard/"

	AppWorkspace                      = "/app/workspace"
	WorkspacePrefix                   = "/app/workspace/"
	WorkspaceInfo                     = WorkspacePrefix + "info"
	WorkspaceWorkProducts             = WorkspacePrefix + "work-products"
	WorkspaceWorkProductPattern       = WorkspacePrefix + "work-products/{id}"
	WorkspaceWorkProductDeletePattern = WorkspacePrefix + "work-products/{id}/delete"
	WorkspaceRisks                    = WorkspacePrefix + "risks"
	WorkspaceRiskPattern              = WorkspacePrefix + "risks/{id}"
	WorkspaceRiskDeletePattern        = WorkspacePrefix + "risks/{id}/delete"
	WorkspaceTasks                    = WorkspacePrefix + "tasks"
	WorkspaceTaskPattern              = WorkspacePrefix + "tasks/{id}"
	WorkspaceTaskDeletePattern        = WorkspacePrefix + "tasks/{id}/delete"
	WorkspaceRestPattern              = WorkspacePrefix + "{rest...}"

	AppPractices        = "/app/practices"
	PracticesPrefix     = "/app/practices/"
	PracticePattern     = PracticesPrefix + "{practiceID}"
	PracticeRestPattern = PracticesPrefix + "{practiceID}/{rest...}"

	AppSimulation         = "/app/simulation"
	SimulationPrefix      = "/app/simulation/"
	SimulationStart       = SimulationPrefix + "start"
	SimulationChoose      = SimulationPrefix + "choose"
	SimulationAdvance     = SimulationPrefix + "advance"
	SimulationRestart     = SimulationPrefix + "restart"
	SimulationRestPattern = SimulationPrefix + "{rest...}"

	AppCopilot         = "/app/copilot"
	CopilotPrefix      = "/app/copilot/"
	CopilotAsk         = CopilotPrefix + "ask"
	CopilotSocket      = CopilotPrefix + "ws"
	CopilotRestPattern = CopilotPrefix + "{rest...}"
)

// Practice returns the detail path of one base practice.
func Practice(practiceID string) string {
	return PracticesPrefix + escapeSegment(practiceID)
}

// WorkProduct returns the update path of one work product row.
func WorkProduct(id string) string {
	return WorkspaceWorkProducts + "/" + escapeSegment(id)
}

// WorkProductDelete returns the delete path of one work product row.
func WorkProductDelete(id string) string {
	return WorkProduct(id) + "/delete"
}

// Risk returns the update path of one risk row.
func Risk(id string) string {
	return WorkspaceRisks + "/" + escapeSegment(id)
}

// RiskDelete returns the delete path of one risk row.
func RiskDelete(id string) string {
	return Risk(id) + "/delete"
}

// Task returns the update path of one schedule task row.
func Task(id string) string {
	return WorkspaceTasks + "/" + escapeSegment(id)
}

// TaskDelete returns the delete path of one schedule task row.
func TaskDelete(id string) string {
	return Task(id) + "/delete"
}

// CopilotQuery returns the copilot page with a prefilled question and
// context.
func CopilotQuery(query, contextText string) string {
	values := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		values.Set("q", q)
	}
	if c := strings.TrimSpace(contextText); c != "" {
		values.Set("context", c)
	}
	if len(values) == 0 {
		return AppCopilot
	}
	return AppCopilot + "?" + values.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
