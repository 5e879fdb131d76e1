package coupon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	code := Generate()

	assert.Len(t, code, len(Prefix)+1+codeLength)
	assert.True(t, strings.HasPrefix(code, "RW-"))
	assert.True(t, Validate(code))
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := Generate()
		_, exists := seen[code]
		assert.False(t, exists, "duplicate coupon code: %s", code)
		seen[code] = struct{}{}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{
			name: "Valid code",
			code: "RW-A2B3C4D5E6F7G2H3",
			want: true,
		},
		{
			name: "Empty string",
			code: "",
			want: false,
		},
		{
			name: "Wrong prefix",
			code: "XX-A2B3C4D5E6F7G2H3",
			want: false,
		},
		{
			name: "Missing separator",
			code: "RWA2B3C4D5E6F7G2H3X",
			want: false,
		},
		{
			name: "Too short",
			code: "RW-A2B3C4",
			want: false,
		},
		{
			name: "Too long",
			code: "RW-A2B3C4D5E6F7G2H3J4",
			want: false,
		},
		{
			name: "Lowercase letters",
			code: "RW-a2b3c4d5e6f7g2h3",
			want: false,
		},
		{
			name: "Digits outside base32 alphabet",
			code: "RW-A0B1C8D9E6F7G2H3",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.code))
		})
	}
}
