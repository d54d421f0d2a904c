package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizeMemberID makes "{UUID}" and bare UUID forms of a member id compare equal.
// Ids that are not UUIDs are returned trimmed.
func NormalizeMemberID(id string) string {
	id = strings.TrimSpace(id)
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}

func NewReportID() string {
	return uuid.NewString()
}
