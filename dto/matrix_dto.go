package dto

// CreateMatrixEntryRequest represents the request payload for one matrix entry
type CreateMatrixEntryRequest struct {
	WhoSender            string `json:"who_sender"`
	WhoReceiver          string `json:"who_receiver"`
	WhatContent          string `json:"what_content"`
	WhenFrequency        string `json:"when_frequency"`
	WhenTiming           string `json:"when_timing"`
	HowChannel           string `json:"how_channel"`
	HowFormat            string `json:"how_format"`
	WhyPurpose           string `json:"why_purpose"`
	Priority             string `json:"priority" binding:"omitempty,oneof=high medium low"`
	ConfirmationRequired bool   `json:"confirmation_required"`
}

// UpdateMatrixEntryRequest is a partial update; nil fields keep their prior value.
type UpdateMatrixEntryRequest struct {
	WhoSender            *string `json:"who_sender"`
	WhoReceiver          *string `json:"who_receiver"`
	WhatContent          *string `json:"what_content"`
	WhenFrequency        *string `json:"when_frequency"`
	WhenTiming           *string `json:"when_timing"`
	HowChannel           *string `json:"how_channel"`
	HowFormat            *string `json:"how_format"`
	WhyPurpose           *string `json:"why_purpose"`
	Priority             *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	ConfirmationRequired *bool   `json:"confirmation_required"`
}

// BulkMatrixRequest carries a batch of matrix entries to create in one transaction
type BulkMatrixRequest struct {
	Entries []CreateMatrixEntryRequest `json:"entries" binding:"required"`
}
