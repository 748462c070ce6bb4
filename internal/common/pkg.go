package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is the String() result for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias for a given package path: the last path
// element with a major version suffix ("/v2", ".v3") and a "go-" prefix
// removed, and any remaining non-identifier characters replaced by '_'.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) && path.Dir(pkgPath) != "." {
		base = path.Base(path.Dir(pkgPath))
	}

	if i := strings.LastIndex(base, ".v"); i > 0 && isMajorVersion(base[i+1:]) {
		base = base[:i]
	}

	base = strings.TrimPrefix(base, "go-")

	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return '_'
	}, base)
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// SnakeCase converts a Go identifier such as "SampleEnum" or "HTTPStatus"
// into "sample_enum" / "http_status". It is used for generated file names.
func SnakeCase(name string) string {
	var sb strings.Builder

	runes := []rune(name)
	for i, r := range runes {
		upper := 'A' <= r && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z' || runes[i-1] >= '0' && runes[i-1] <= '9'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'

			if (prevLower || nextLower) && runes[i-1] != '_' {
				sb.WriteByte('_')
			}
		}

		if upper {
			r += 'a' - 'A'
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
