package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/models"
)

// requiredRoles are the stakeholder role categories every plan should cover.
// Matching is a case-insensitive substring test against each stakeholder role.
var requiredRoles = []string{"project lead", "sponsor", "client"}

// ValidationService checks a project aggregate for completeness. It never
// mutates data; it only reads the aggregate handed to it.
type ValidationService struct{}

// NewValidationService creates a new validation service instance
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// ValidateProject scores a fully hydrated project. Each checklist item adds
// one to the denominator when it applies and one to the numerator when
// satisfied; the score is the passed percentage rounded to one decimal.
//
// The denominator is data-dependent: the stakeholder detail checks only count
// when stakeholders exist, while the plan detail checks and the matrix check
// always count even without a plan.
func (s *ValidationService) ValidateProject(project models.Project) dto.ValidationReport {
	report := dto.ValidationReport{
		IsValid:         true,
		Errors:          []string{},
		Warnings:        []string{},
		Recommendations: []string{},
	}

	totalChecks := 0
	passedChecks := 0

	// Project checks
	totalChecks++
	if len(strings.TrimSpace(project.Name)) < 3 {
		report.Errors = append(report.Errors, "Project name must be at least 3 characters long")
		report.IsValid = false
	} else {
		passedChecks++
	}

	totalChecks++
	if len(strings.TrimSpace(project.Description)) < 10 {
		report.Warnings = append(report.Warnings, "Project description should be more meaningful (at least 10 characters)")
	} else {
		passedChecks++
	}

	// Stakeholder checks
	totalChecks++
	if len(project.Stakeholders) == 0 {
		report.Errors = append(report.Errors, "At least one stakeholder must be defined")
		report.IsValid = false
	} else {
		passedChecks++

		totalChecks++
		var incomplete []string
		for _, stakeholder := range project.Stakeholders {
			if stakeholder.Name == "" || stakeholder.Role == "" {
				label := stakeholder.Name
				if label == "" {
					label = "Unnamed stakeholder"
				}
				incomplete = append(incomplete, label)
			}
		}
		if len(incomplete) > 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Incomplete stakeholder information: %s", strings.Join(incomplete, ", ")))
		} else {
			passedChecks++
		}

		totalChecks++
		var missing []string
		for _, required := range requiredRoles {
			covered := false
			for _, stakeholder := range project.Stakeholders {
				if strings.Contains(strings.ToLower(stakeholder.Role), required) {
					covered = true
					break
				}
			}
			if !covered {
				missing = append(missing, required)
			}
		}
		if len(missing) > 0 {
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Important stakeholder roles may be missing: %s", strings.Join(missing, ", ")))
		} else {
			passedChecks++
		}
	}

	// Communication plan checks count toward the total even when no plan exists
	plan := project.CommunicationPlan
	totalChecks += 2
	if plan == nil {
		report.Warnings = append(report.Warnings, "Communication plan details are not filled in")
	} else {
		if plan.CommunicationObjectives != "" {
			passedChecks++
		} else {
			report.Warnings = append(report.Warnings, "Communication objectives should be defined")
		}

		if plan.CommunicationStrategy != "" {
			passedChecks++
		} else {
			report.Warnings = append(report.Warnings, "Communication strategy should be defined")
		}
	}

	// Matrix check counts toward the total even when no plan exists
	totalChecks++
	if plan != nil {
		if len(plan.Matrix) == 0 {
			report.Warnings = append(report.Warnings, "Communication matrix is empty - define communication rules")
		} else {
			passedChecks++
		}
	}

	report.CompletenessScore = roundScore(float64(passedChecks) / float64(totalChecks) * 100)

	switch {
	case report.CompletenessScore < 60:
		report.Recommendations = append(report.Recommendations, "The communication plan needs substantial additions")
	case report.CompletenessScore < 80:
		report.Recommendations = append(report.Recommendations, "The communication plan is basically complete, but could be improved")
	default:
		report.Recommendations = append(report.Recommendations, "The communication plan is well structured and complete")
	}

	return report
}

// roundScore rounds to one decimal place
func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
