package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		pw, err := GeneratePassword()
		require.NoError(t, err)
		assert.Regexp(t, pattern, pw)
		seen[pw] = true
	}

	// 50 draws from a 36^8 space collapsing to a handful would mean a
	// broken generator.
	assert.Greater(t, len(seen), 45)
}

func TestGenerateUsername(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		pattern   string
	}{
		{"plain name", "Dana", `^dana\d{4}$`},
		{"trims whitespace", "  Dana  ", `^dana\d{4}$`},
		{"already lowercase", "rey", `^rey\d{4}$`},
		{"empty falls back", "", `^user\d{4}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, err := GenerateUsername(tt.firstName)
			require.NoError(t, err)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), username)
		})
	}
}
