package dto

// CreateCommunicationPlanRequest represents the request payload for creating a plan
type CreateCommunicationPlanRequest struct {
	CommunicationObjectives     string   `json:"communication_objectives"`
	CommunicationStrategy       string   `json:"communication_strategy"`
	EscalationProcedures        string   `json:"escalation_procedures"`
	CommunicationConstraints    string   `json:"communication_constraints"`
	CompanyGuidelines           string   `json:"company_guidelines"`
	AvailableTechnologies       []string `json:"available_technologies"`
	DocumentationStandards      string   `json:"documentation_standards"`
	ComplianceRequirements      string   `json:"compliance_requirements"`
	InformationTypes            []string `json:"information_types"`
	ConfidentialityRequirements string   `json:"confidentiality_requirements"`
	LanguageConsiderations      string   `json:"language_considerations"`
	CulturalConsiderations      string   `json:"cultural_considerations"`
	CommunicationBudget         *float64 `json:"communication_budget"`
	BudgetBreakdown             string   `json:"budget_breakdown"`
	FeedbackMechanisms          string   `json:"feedback_mechanisms"`
	UpdateProcedures            string   `json:"update_procedures"`
	EffectivenessMetrics        string   `json:"effectiveness_metrics"`
}

// UpdateCommunicationPlanRequest is a partial update; nil fields keep their prior value.
type UpdateCommunicationPlanRequest struct {
	CommunicationObjectives     *string   `json:"communication_objectives"`
	CommunicationStrategy       *string   `json:"communication_strategy"`
	EscalationProcedures        *string   `json:"escalation_procedures"`
	CommunicationConstraints    *string   `json:"communication_constraints"`
	CompanyGuidelines           *string   `json:"company_guidelines"`
	AvailableTechnologies       *[]string `json:"available_technologies"`
	DocumentationStandards      *string   `json:"documentation_standards"`
	ComplianceRequirements      *string   `json:"compliance_requirements"`
	InformationTypes            *[]string `json:"information_types"`
	ConfidentialityRequirements *string   `json:"confidentiality_requirements"`
	LanguageConsiderations      *string   `json:"language_considerations"`
	CulturalConsiderations      *string   `json:"cultural_considerations"`
	CommunicationBudget         *float64  `json:"communication_budget"`
	BudgetBreakdown             *string   `json:"budget_breakdown"`
	FeedbackMechanisms          *string   `json:"feedback_mechanisms"`
	UpdateProcedures            *string   `json:"update_procedures"`
	EffectivenessMetrics        *string   `json:"effectiveness_metrics"`
}
