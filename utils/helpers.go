package utils

import (
	"fmt"
	"strings"
)

// NotSpecified is the placeholder rendered for missing optional fields in
// exported documents.
const NotSpecified = "Not specified"

// OrNotSpecified returns the value, or the placeholder when it is blank
func OrNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotSpecified
	}
	return value
}

// JoinOrNotSpecified renders a list field as a comma-separated string
func JoinOrNotSpecified(values []string) string {
	if len(values) == 0 {
		return NotSpecified
	}
	return strings.Join(values, ", ")
}

// ExportFilename derives a download filename from a project name, with spaces
// replaced by underscores.
func ExportFilename(projectName, extension string) string {
	return fmt.Sprintf("communication_plan_%s.%s", strings.ReplaceAll(projectName, " ", "_"), extension)
}
