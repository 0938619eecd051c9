package cachepath

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestDigestDeterministic(t *testing.T) {
	first := Digest("foo.jar", "/app/foo.jar")
	second := Digest("foo.jar", "/app/foo.jar")
	assert.Equal(t, first, second)
}

func TestDigestInputSensitivity(t *testing.T) {
	a := Digest("foo.jar", "/app/foo.jar")
	b := Digest("foo.jar", "/app/foo.jaR")
	assert.NotEqual(t, a, b, "a single changed byte must change the digest")
}

func TestDigestFixedWidthHex(t *testing.T) {
	// Inputs chosen so the raw hash contains bytes below 0x10; every
	// byte must still occupy exactly two hex characters.
	inputs := []string{"", "a", "passwd", strings.Repeat("x", 1000), "/../../etc/passwd"}
	for _, input := range inputs {
		hexed := Digest("noextension", input)
		assert.True(t, hexRe.MatchString(hexed), "digest of %q is not 64 lowercase hex chars: %s", input, hexed)
	}
}

func TestDigestExtension(t *testing.T) {
	tests := []struct {
		name     string
		origName string
		wantExt  string
	}{
		{
			name:     "short extension is appended",
			origName: "foo.jar",
			wantExt:  ".jar",
		},
		{
			name:     "no extension",
			origName: "passwd",
			wantExt:  "",
		},
		{
			name:     "nine char extension is appended",
			origName: "archive.12345678",
			wantExt:  ".12345678",
		},
		{
			name:     "ten char extension is dropped",
			origName: "archive.123456789",
			wantExt:  "",
		},
		{
			name:     "dotfile has no extension",
			origName: ".bashrc",
			wantExt:  "",
		},
		{
			name:     "trailing dot is dropped",
			origName: "name.",
			wantExt:  "",
		},
		{
			name:     "last extension wins",
			origName: "bundle.tar.gz",
			wantExt:  ".gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hexed := Digest(tt.origName, "input")
			assert.Len(t, hexed, 64+len(tt.wantExt))
			assert.True(t, strings.HasSuffix(hexed, tt.wantExt))
			assert.True(t, hexRe.MatchString(hexed[:64]))
		})
	}
}
