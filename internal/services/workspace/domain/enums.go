package domain

import "strings"

// WorkProductType classifies a work product.
type WorkProductType string

const (
	WorkProductPlan          WorkProductType = "Plan"
	WorkProductReport        WorkProductType = "Report"
	WorkProductSpecification WorkProductType = "Specification"
	WorkProductRecord        WorkProductType = "Record"
)

// WorkProductTypes lists types in display order.
var WorkProductTypes = []WorkProductType{WorkProductPlan, WorkProductReport, WorkProductSpecification, WorkProductRecord}

// WorkProductStatus is the lifecycle state of a work product.
type WorkProductStatus string

const (
	WorkProductDraft     WorkProductStatus = "Draft"
	WorkProductInReview  WorkProductStatus = "In Review"
	WorkProductBaselined WorkProductStatus = "Baselined"
	WorkProductReleased  WorkProductStatus = "Released"
)

// WorkProductStatuses lists statuses in lifecycle order.
var WorkProductStatuses = []WorkProductStatus{WorkProductDraft, WorkProductInReview, WorkProductBaselined, WorkProductReleased}

// RiskImpact grades the consequence of a risk.
type RiskImpact string

const (
	RiskImpactLow      RiskImpact = "Low"
	RiskImpactMedium   RiskImpact = "Medium"
	RiskImpactHigh     RiskImpact = "High"
	RiskImpactCritical RiskImpact = "Critical"
)

// RiskImpacts lists impacts from least to most severe.
var RiskImpacts = []RiskImpact{RiskImpactLow, RiskImpactMedium, RiskImpactHigh, RiskImpactCritical}

// Severe reports whether the impact is High or Critical.
func (i RiskImpact) Severe() bool {
	return i == RiskImpactHigh || i == RiskImpactCritical
}

// RiskProbability grades the likelihood of a risk.
type RiskProbability string

const (
	RiskProbabilityLow    RiskProbability = "Low"
	RiskProbabilityMedium RiskProbability = "Medium"
	RiskProbabilityHigh   RiskProbability = "High"
)

// RiskProbabilities lists probabilities from least to most likely.
var RiskProbabilities = []RiskProbability{RiskProbabilityLow, RiskProbabilityMedium, RiskProbabilityHigh}

// RiskStatus tracks risk handling.
type RiskStatus string

const (
	RiskOpen      RiskStatus = "Open"
	RiskMitigated RiskStatus = "Mitigated"
	RiskClosed    RiskStatus = "Closed"
)

// RiskStatuses lists statuses in handling order.
var RiskStatuses = []RiskStatus{RiskOpen, RiskMitigated, RiskClosed}

// ParseWorkProductType matches value case-insensitively, defaulting to Plan.
func ParseWorkProductType(value string) WorkProductType {
	return parseEnum(value, WorkProductTypes, WorkProductPlan)
}

// ParseWorkProductStatus matches value case-insensitively, defaulting to Draft.
func ParseWorkProductStatus(value string) WorkProductStatus {
	return parseEnum(value, WorkProductStatuses, WorkProductDraft)
}

// ParseRiskImpact matches value case-insensitively, defaulting to Medium.
func ParseRiskImpact(value string) RiskImpact {
	return parseEnum(value, RiskImpacts, RiskImpactMedium)
}

// ParseRiskProbability matches value case-insensitively, defaulting to Medium.
func ParseRiskProbability(value string) RiskProbability {
	return parseEnum(value, RiskProbabilities, RiskProbabilityMedium)
}

// ParseRiskStatus matches value case-insensitively, defaulting to Open.
func ParseRiskStatus(value string) RiskStatus {
	return parseEnum(value, RiskStatuses, RiskOpen)
}

func parseEnum[T ~string](value string, allowed []T, fallback T) T {
	value = strings.TrimSpace(value)
	for _, candidate := range allowed {
		if strings.EqualFold(string(candidate), value) {
			return candidate
		}
	}
	return fallback
}
