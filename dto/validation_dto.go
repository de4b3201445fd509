package dto

// ValidationReport is the completeness diagnostic for a project aggregate
type ValidationReport struct {
	IsValid           bool     `json:"is_valid"`
	Errors            []string `json:"errors"`
	Warnings          []string `json:"warnings"`
	Recommendations   []string `json:"recommendations"`
	CompletenessScore float64  `json:"completeness_score"`
}
