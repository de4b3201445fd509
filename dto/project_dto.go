package dto

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	Charter            string   `json:"charter"`
	Goals              string   `json:"goals"`
	Phases             []string `json:"phases"`
	Milestones         []string `json:"milestones"`
	RiskManagementPlan string   `json:"risk_management_plan"`
}

// UpdateProjectRequest is a partial update: nil fields keep their prior value,
// non-nil fields are written as-is (including explicit empty values).
type UpdateProjectRequest struct {
	Name               *string   `json:"name"`
	Description        *string   `json:"description"`
	Charter            *string   `json:"charter"`
	Goals              *string   `json:"goals"`
	Phases             *[]string `json:"phases"`
	Milestones         *[]string `json:"milestones"`
	RiskManagementPlan *string   `json:"risk_management_plan"`
}
