package validation

import (
	"fmt"
	"strings"

	"rhystmorgan/veContacts/internal/models"
)

const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
)

// Rule selects which fields a new contact must carry.
type Rule string

const (
	// RuleNameAndEmailOrPhone requires a name plus at least one of email or
	// phone.
	RuleNameAndEmailOrPhone Rule = "either"
	// RuleAllFields requires name, email and phone.
	RuleAllFields Rule = "all"
)

func ParseRule(s string) (Rule, error) {
	switch Rule(strings.ToLower(strings.TrimSpace(s))) {
	case "", RuleNameAndEmailOrPhone:
		return RuleNameAndEmailOrPhone, nil
	case RuleAllFields:
		return RuleAllFields, nil
	default:
		return "", fmt.Errorf("invalid form rule: %s (must be 'either' or 'all')", s)
	}
}

// ValidateContactInput checks input against rule. Whitespace-only fields
// count as empty.
func ValidateContactInput(input models.ContactInput, rule Rule) ValidationResult {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)

	var errs []ValidationError
	if name == "" {
		errs = append(errs, ValidationError{
			Field:   FieldName,
			Code:    ErrorNameRequired,
			Message: "Name is required",
		})
	}

	switch rule {
	case RuleAllFields:
		if email == "" {
			errs = append(errs, ValidationError{
				Field:   FieldEmail,
				Code:    ErrorEmailRequired,
				Message: "Email is required",
			})
		}
		if phone == "" {
			errs = append(errs, ValidationError{
				Field:   FieldPhone,
				Code:    ErrorPhoneRequired,
				Message: "Phone is required",
			})
		}
	default:
		if email == "" && phone == "" {
			errs = append(errs, ValidationError{
				Field:   FieldEmail,
				Code:    ErrorContactMethodRequired,
				Message: "Enter an email or a phone number",
			})
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
