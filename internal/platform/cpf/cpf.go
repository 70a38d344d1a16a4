// Package cpf provides checksum validation and synthetic generation for
// CPF numbers, the Brazilian 11-digit personal identification number used
// as a uniqueness key for user accounts.
package cpf

import (
	"math/rand"
	"strings"

	"github.com/paemuri/brdoc"
)

// Validator defines the identity-document capability consumed by the API
// layer: checksum validation for inbound documents and synthetic value
// generation for test fixtures.
type Validator interface {
	// IsValid reports whether the document passes CPF checksum validation.
	// Both bare ("52998224725") and punctuated ("529.982.247-25") forms
	// are accepted.
	IsValid(doc string) bool

	// Generate returns a synthetic CPF that passes checksum validation,
	// as 11 bare digits. It is intended for test and fixture use only;
	// no production request path calls it.
	Generate() string
}

// BRDocValidator implements Validator using the brdoc library for
// validation and a local check-digit computation for generation.
type BRDocValidator struct{}

// NewBRDocValidator creates a new BRDocValidator.
func NewBRDocValidator() *BRDocValidator {
	return &BRDocValidator{}
}

var _ Validator = (*BRDocValidator)(nil)

// IsValid implements the Validator interface using brdoc.
func (v *BRDocValidator) IsValid(doc string) bool {
	return brdoc.IsCPF(doc)
}

// Generate implements the Validator interface. It draws nine random base
// digits and appends the two standard CPF check digits.
func (v *BRDocValidator) Generate() string {
	digits := make([]int, 11)
	for i := 0; i < 9; i++ {
		digits[i] = rand.Intn(10)
	}

	// Repdigit sequences (111.111.111-11 etc.) are rejected by validators
	// despite having consistent check digits, so break them up.
	if allEqual(digits[:9]) {
		digits[8] = (digits[8] + 1) % 10
	}

	digits[9] = checkDigit(digits[:9])
	digits[10] = checkDigit(digits[:10])

	var b strings.Builder
	for _, d := range digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// Normalize reduces a CPF to its canonical bare-digit form, stripping the
// punctuation of the formatted layout ("529.982.247-25" -> "52998224725").
// It does not validate; callers check IsValid first. Storage and uniqueness
// comparisons always use the normalized form.
func Normalize(doc string) string {
	var b strings.Builder
	b.Grow(len(doc))
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// checkDigit computes a CPF check digit over the given prefix. The weights
// run from len(prefix)+1 down to 2; a remainder below 2 yields digit 0.
func checkDigit(prefix []int) int {
	sum := 0
	weight := len(prefix) + 1
	for _, d := range prefix {
		sum += d * weight
		weight--
	}

	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
