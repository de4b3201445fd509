package dto

// CreateStakeholderRequest represents the request payload for creating a stakeholder
type CreateStakeholderRequest struct {
	Name                   string   `json:"name" binding:"required"`
	Role                   string   `json:"role"`
	Department             string   `json:"department"`
	ContactInfo            string   `json:"contact_info"`
	InformationNeeds       []string `json:"information_needs"`
	PreferredChannels      []string `json:"preferred_channels"`
	PreferredFormats       []string `json:"preferred_formats"`
	CommunicationFrequency string   `json:"communication_frequency"`
	EscalationPath         string   `json:"escalation_path"`
	DecisionAuthority      string   `json:"decision_authority"`
	Timezone               string   `json:"timezone"`
	Availability           string   `json:"availability"`
}

// UpdateStakeholderRequest is a partial update; nil fields keep their prior value.
type UpdateStakeholderRequest struct {
	Name                   *string   `json:"name"`
	Role                   *string   `json:"role"`
	Department             *string   `json:"department"`
	ContactInfo            *string   `json:"contact_info"`
	InformationNeeds       *[]string `json:"information_needs"`
	PreferredChannels      *[]string `json:"preferred_channels"`
	PreferredFormats       *[]string `json:"preferred_formats"`
	CommunicationFrequency *string   `json:"communication_frequency"`
	EscalationPath         *string   `json:"escalation_path"`
	DecisionAuthority      *string   `json:"decision_authority"`
	Timezone               *string   `json:"timezone"`
	Availability           *string   `json:"availability"`
}

// BulkStakeholderRequest carries a batch of stakeholders to create in one
// transaction (e.g. a CSV import).
type BulkStakeholderRequest struct {
	Stakeholders []CreateStakeholderRequest `json:"stakeholders" binding:"required"`
}
