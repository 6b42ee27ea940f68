package loader

import (
	"os"
	"strings"
	"unicode"
)

const envPrefix = "${env."

// expandEnv replaces every ${env.KEY} in value with the environment variable
// KEY, or "" when unset. Keys may hold only letters, digits and '_'; an
// expression with an invalid key or no closing brace is kept literally.
func expandEnv(value string) string {
	var b strings.Builder
	rest := value
	for {
		idx := strings.Index(rest, envPrefix)
		if idx < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:idx])
		keyStart := idx + len(envPrefix)
		keyLen := strings.IndexByte(rest[keyStart:], '}')
		if keyLen < 0 {
			b.WriteString(rest[idx:])
			return b.String()
		}
		key := rest[keyStart : keyStart+keyLen]
		if !isEnvKey(key) {
			// rescan after the prefix so nested expressions still expand
			b.WriteString(envPrefix)
			rest = rest[keyStart:]
			continue
		}
		b.WriteString(os.Getenv(key))
		rest = rest[keyStart+keyLen+1:]
	}
}

func isEnvKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
