package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rhystmorgan/veContacts/internal/models"
)

func TestValidateContactInput(t *testing.T) {
	tests := []struct {
		name      string
		input     models.ContactInput
		rule      Rule
		wantValid bool
		wantCodes []ValidationErrorCode
	}{
		{
			name:      "either: name only is rejected",
			input:     models.ContactInput{Name: "Ann"},
			rule:      RuleNameAndEmailOrPhone,
			wantCodes: []ValidationErrorCode{ErrorContactMethodRequired},
		},
		{
			name:      "either: name and email",
			input:     models.ContactInput{Name: "Ann", Email: "ann@example.com"},
			rule:      RuleNameAndEmailOrPhone,
			wantValid: true,
		},
		{
			name:      "either: name and phone",
			input:     models.ContactInput{Name: "Ann", Phone: "555"},
			rule:      RuleNameAndEmailOrPhone,
			wantValid: true,
		},
		{
			name:      "either: missing name",
			input:     models.ContactInput{Email: "ann@example.com"},
			rule:      RuleNameAndEmailOrPhone,
			wantCodes: []ValidationErrorCode{ErrorNameRequired},
		},
		{
			name:      "either: whitespace is empty",
			input:     models.ContactInput{Name: "  ", Email: " ", Phone: "\t"},
			rule:      RuleNameAndEmailOrPhone,
			wantCodes: []ValidationErrorCode{ErrorNameRequired, ErrorContactMethodRequired},
		},
		{
			name:      "all: every field present",
			input:     models.ContactInput{Name: "Ann", Email: "a@x", Phone: "555"},
			rule:      RuleAllFields,
			wantValid: true,
		},
		{
			name:      "all: phone missing",
			input:     models.ContactInput{Name: "Ann", Email: "a@x"},
			rule:      RuleAllFields,
			wantCodes: []ValidationErrorCode{ErrorPhoneRequired},
		},
		{
			name:      "all: nothing",
			input:     models.ContactInput{},
			rule:      RuleAllFields,
			wantCodes: []ValidationErrorCode{ErrorNameRequired, ErrorEmailRequired, ErrorPhoneRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateContactInput(tt.input, tt.rule)
			assert.Equal(t, tt.wantValid, result.IsValid)

			var codes []ValidationErrorCode
			for _, err := range result.Errors {
				codes = append(codes, err.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestFieldError(t *testing.T) {
	result := ValidateContactInput(models.ContactInput{}, RuleNameAndEmailOrPhone)
	assert.Equal(t, "Name is required", result.FieldError(FieldName))
	assert.Equal(t, "Enter an email or a phone number", result.FieldError(FieldEmail))
	assert.Empty(t, result.FieldError(FieldPhone))
}

func TestParseRule(t *testing.T) {
	for in, want := range map[string]Rule{
		"":       RuleNameAndEmailOrPhone,
		"either": RuleNameAndEmailOrPhone,
		" ALL ":  RuleAllFields,
		"all":    RuleAllFields,
		"Either": RuleNameAndEmailOrPhone,
	} {
		got, err := ParseRule(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseRule("some")
	assert.Error(t, err)
}
