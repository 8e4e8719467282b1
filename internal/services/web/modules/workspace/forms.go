package workspace

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/man3/internal/services/web/platform/errors"
	"github.com/louisbranch/man3/internal/services/workspace/domain"
)

// maxFormBytes bounds workspace form bodies.
const maxFormBytes = 64 << 10

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		return apperrors.Wrap(apperrors.KindInvalidInput, "failed to parse workspace form", err)
	}
	return nil
}

func field(r *http.Request, name string) string {
	return strings.TrimSpace(r.PostFormValue(name))
}

func parseInfo(r *http.Request) domain.ProjectInfo {
	return domain.ProjectInfo{
		Name:        field(r, "name"),
		Manager:     field(r, "manager"),
		Customer:    field(r, "customer"),
		StartDate:   field(r, "start_date"),
		Description: field(r, "description"),
	}
}

func parseWorkProduct(r *http.Request, id string) domain.WorkProduct {
	return domain.WorkProduct{
		ID:     id,
		Name:   field(r, "name"),
		Type:   domain.ParseWorkProductType(field(r, "type")),
		Status: domain.ParseWorkProductStatus(field(r, "status")),
		Owner:  field(r, "owner"),
	}
}

func parseRisk(r *http.Request, id string) domain.Risk {
	return domain.Risk{
		ID:             id,
		Description:    field(r, "description"),
		Impact:         domain.ParseRiskImpact(field(r, "impact")),
		Probability:    domain.ParseRiskProbability(field(r, "probability")),
		Status:         domain.ParseRiskStatus(field(r, "status")),
		MitigationPlan: field(r, "mitigation_plan"),
	}
}

func parseTask(r *http.Request, id string) (domain.ScheduleTask, error) {
	expected, err := parsePercent(r, "expected_progress")
	if err != nil {
		return domain.ScheduleTask{}, err
	}
	actual, err := parsePercent(r, "actual_progress")
	if err != nil {
		return domain.ScheduleTask{}, err
	}
	return domain.ScheduleTask{
		ID:               id,
		Name:             field(r, "name"),
		StartDate:        field(r, "start_date"),
		EndDate:          field(r, "end_date"),
		ExpectedProgress: expected,
		ActualProgress:   actual,
		DelayReason:      field(r, "delay_reason"),
		AssignedTo:       field(r, "assigned_to"),
	}, nil
}

// parsePercent reads an integer percentage. Blank means zero; range
// clamping is left to the domain.
func parsePercent(r *http.Request, name string) (int, error) {
	raw := field(r, name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInvalidInput, name+" must be a whole number", err)
	}
	return value, nil
}
