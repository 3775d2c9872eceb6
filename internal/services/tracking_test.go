package services_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/denonce-tg/signalement-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trackingCodePattern = regexp.MustCompile(`^[0-9A-Z]+-[0-9A-Z]{5}$`)

// TestNewTrackingCode_Format verifies the documented shape: base-36
// timestamp, hyphen, 5 random base-36 characters, all uppercased.
func TestNewTrackingCode_Format(t *testing.T) {
	// Act
	code, err := services.NewTrackingCode()

	// Assert
	require.NoError(t, err)
	assert.Regexp(t, trackingCodePattern, code)
	assert.Equal(t, strings.ToUpper(code), code, "tracking code must be uppercased")

	parts := strings.SplitN(code, "-", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[1], 5, "random suffix must be 5 characters")
	assert.NotEmpty(t, parts[0], "timestamp token must not be empty")
}

// TestNewTrackingCode_Distinct verifies that repeated generations do not
// trivially collide: the timestamp pins the prefix, so distinctness comes
// from the random suffix.
func TestNewTrackingCode_Distinct(t *testing.T) {
	// Act
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := services.NewTrackingCode()
		require.NoError(t, err)
		seen[code] = true
	}

	// Assert - 20 draws from a 36^5 suffix space should never all collapse
	assert.Greater(t, len(seen), 1, "repeated generations must not return one constant code")
}

// TestPageCount verifies pagination page-count rounding.
func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, services.PageCount(0, 20))
	assert.Equal(t, 1, services.PageCount(1, 20))
	assert.Equal(t, 1, services.PageCount(20, 20))
	assert.Equal(t, 2, services.PageCount(21, 20))
	assert.Equal(t, 5, services.PageCount(100, 20))
	assert.Equal(t, 0, services.PageCount(10, 0), "zero limit must not divide by zero")
}
