package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeRedirect(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"Empty", "", ""},
		{"LocalPath", "/rental/my", "/rental/my"},
		{"LocalPathWithQuery", "/admin/stall?status=0", "/admin/stall?status=0"},
		{"Absolute", "https://evil.example/phish", ""},
		{"SchemeRelative", "//evil.example", ""},
		{"BackslashTrick", "/\\evil.example", ""},
		{"Relative", "rental/my", ""},
		{"LoginLoop", "/login?redirect=/x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeRedirect(tt.target))
		})
	}
}

func TestLanding(t *testing.T) {
	assert.Equal(t, "/rental/my", landing(false, "/rental/my"))
	assert.Equal(t, "/rental/my", landing(true, "/rental/my"))
	assert.Equal(t, "/admin", landing(true, ""))
	assert.Equal(t, "/", landing(false, ""))
}
