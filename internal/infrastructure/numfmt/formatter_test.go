package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_FormatInt(t *testing.T) {
	f := NewFormatter("en")

	cases := []struct {
		locale string
		n      int
		want   string
	}{
		{"en", 1, "1"},
		{"", 5, "5"},
		{"en-US", 12345, "12345"},
		{"de", 12345, "12345"},
		{"fr", 0, "0"},
		{"en", -3, "-3"},
		{"garbage locale", 42, "42"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, f.FormatInt(tc.locale, tc.n), "%s/%d", tc.locale, tc.n)
	}
}

func TestNewFormatter_InvalidDefault(t *testing.T) {
	f := NewFormatter("%%")
	assert.Equal(t, "7", f.FormatInt("", 7))
}
