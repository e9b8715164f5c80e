package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	assert.Nil(t, FullName("John Doe"))
	assert.Nil(t, FullName("Jo"))

	d := FullName("John3")
	require.NotNil(t, d)
	assert.Equal(t, "full_name", d.Field)

	assert.NotNil(t, FullName("J"))
	assert.NotNil(t, FullName(""))
	assert.NotNil(t, FullName(strings.Repeat("a", 101)))
}

func TestEmail(t *testing.T) {
	assert.Nil(t, Email("john@example.com"))
	assert.Nil(t, Email("a.b+c@sub.domain.in"))

	assert.NotNil(t, Email(""))
	assert.NotNil(t, Email("not-an-email"))
	assert.NotNil(t, Email("missing@domain"))
	assert.NotNil(t, Email("spaces in@example.com"))
	assert.NotNil(t, Email(strings.Repeat("a", 250)+"@example.com"))
}

func TestPhone(t *testing.T) {
	assert.Nil(t, Phone("9876543210"))
	assert.Nil(t, Phone("6000000000"))

	// Leading digit below 6 is not an Indian mobile number.
	assert.NotNil(t, Phone("1234567890"))
	// Nine digits.
	assert.NotNil(t, Phone("98765432"))
	assert.NotNil(t, Phone("98765432101"))
	assert.NotNil(t, Phone(""))
	assert.NotNil(t, Phone("98765abc10"))
}

func TestAddress(t *testing.T) {
	assert.Nil(t, Address(""))
	assert.Nil(t, Address("42 MG Road, Jaipur"))
	assert.Nil(t, Address(strings.Repeat("a", 500)))
	assert.NotNil(t, Address(strings.Repeat("a", 501)))
}

func TestPassword(t *testing.T) {
	assert.Nil(t, Password("secret"))
	assert.NotNil(t, Password("12345"))
}
