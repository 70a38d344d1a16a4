package mocks

import "github.com/deanw-dev/accounts-api/internal/platform/cpf"

// MockCPFValidator implements cpf.Validator for testing.
type MockCPFValidator struct {
	Valid     bool
	IsValidFn func(doc string) bool
	Synthetic string
}

var _ cpf.Validator = (*MockCPFValidator)(nil)

// IsValid implements the Validator interface.
func (m *MockCPFValidator) IsValid(doc string) bool {
	if m.IsValidFn != nil {
		return m.IsValidFn(doc)
	}
	return m.Valid
}

// Generate implements the Validator interface.
func (m *MockCPFValidator) Generate() string {
	if m.Synthetic != "" {
		return m.Synthetic
	}
	return "52998224725"
}
