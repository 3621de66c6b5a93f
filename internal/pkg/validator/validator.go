package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Date validation: strict YYYY-MM-DD syntax, then a real calendar date.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func IsValidDate(dateStr string) (time.Time, bool) {
	if !dateRegex.MatchString(dateStr) {
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// ID validation: non-empty, no whitespace, bounded length.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

func IsValidID(id string) bool {
	return idRegex.MatchString(id)
}
