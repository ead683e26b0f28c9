package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "12345678901", NormalizeCPF("123.456.789-01"))
	assert.Equal(t, "12345678901", NormalizeCPF("  12345678901  "))
	assert.Equal(t, "", NormalizeCPF("abc"))
}

func TestIsValidCPF(t *testing.T) {
	// aceita entre 10 e 14 dígitos
	assert.False(t, IsValidCPF("123456789"))
	assert.True(t, IsValidCPF("1234567890"))
	assert.True(t, IsValidCPF("12345678901234"))
	assert.False(t, IsValidCPF("123456789012345"))
}

func TestIsEmailSyntaxValid(t *testing.T) {
	assert.True(t, IsEmailSyntaxValid("ana@example.com"))
	assert.True(t, IsEmailSyntaxValid(" ana@example.com "))
	assert.False(t, IsEmailSyntaxValid("ana@"))
	assert.False(t, IsEmailSyntaxValid("ana example@x.com"))
	assert.False(t, IsEmailSyntaxValid("ana@example"))
}
