package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps struct field names to the labels shown to users.
var fieldLabels = map[string]string{
	// User / profile fields
	"Email":           "Email",
	"Password":        "Password",
	"FullName":        "Full name",
	"Bio":             "Bio",
	"Practice":        "Practice area",
	"Skills":          "Skills",
	"Interests":       "Interests",
	"Industries":      "Industries",
	"Certifications":  "Certifications",
	"ExperienceYears": "Years of experience",

	// Initiative fields
	"Title":           "Title",
	"Description":     "Description",
	"PracticeArea":    "Practice area",
	"SkillsNeeded":    "Skills needed",
	"Tags":            "Tags",
	"TimeCommitment":  "Time commitment",
	"Duration":        "Duration",
	"DurationDetails": "Duration details",
	"RoleType":        "Role type",
	"ContactPerson":   "Contact person",
	"ContactEmail":    "Contact email",
	"Status":          "Status",

	// Engagement fields
	"InitiativeID": "Initiative",
	"Message":      "Message",
}

// FormatValidationErrors converts validator.ValidationErrors into
// user-facing messages. Non-validation errors pass through verbatim.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", label, e.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}
