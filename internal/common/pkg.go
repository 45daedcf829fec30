package common

import (
	"path"
	"sort"
	"strings"
	"unicode"
)

// PkgAlias returns the package alias (last element of path) for a given
// package import path. Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SnakeCase converts a Go identifier to snake_case for generated filenames.
// "UserSession" -> "user_session".
func SnakeCase(name string) string {
	var b strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// SortedKeys returns the keys of m in sorted order for deterministic
// iteration.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
