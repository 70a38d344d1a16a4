package cpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	t.Parallel()

	v := NewBRDocValidator()

	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"valid bare digits", "52998224725", true},
		{"valid punctuated", "529.982.247-25", true},
		{"too short", "123", false},
		{"wrong check digits", "52998224726", false},
		{"repdigit sequence", "11111111111", false},
		{"empty", "", false},
		{"letters", "aaa.bbb.ccc-dd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsValid(tt.doc))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"punctuated", "529.982.247-25", "52998224725"},
		{"already bare", "52998224725", "52998224725"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.doc))
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	v := NewBRDocValidator()

	for i := 0; i < 50; i++ {
		doc := v.Generate()
		assert.Len(t, doc, 11)
		assert.True(t, v.IsValid(doc), "generated CPF %q should validate", doc)
	}
}

func TestCheckDigit(t *testing.T) {
	t.Parallel()

	// 529.982.247-25: first check digit 2, second 5.
	base := []int{5, 2, 9, 9, 8, 2, 2, 4, 7}
	d1 := checkDigit(base)
	assert.Equal(t, 2, d1)

	d2 := checkDigit(append(base, d1))
	assert.Equal(t, 5, d2)
}
