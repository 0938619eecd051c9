package cachepath

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Digest hashes input with SHA-256 and returns the lowercase hex
// encoding, exactly two characters per byte. When origName carries a
// file extension whose length (dot included) is strictly between 1 and
// 10 characters, the extension is appended verbatim so the hashed name
// keeps its file type.
func Digest(origName, input string) string {
	sum := sha256.Sum256([]byte(input))
	hexed := hex.EncodeToString(sum[:])

	var extension string
	if i := strings.LastIndex(origName, "."); i > 0 {
		extension = origName[i:] // contains dot
	}
	if len(extension) > 1 && len(extension) < 10 {
		hexed += extension
	}
	return hexed
}
