// AngelaMos | 2026
// environment.go

package environment

import (
	"strings"
)

// Environment identifies which Cambiatus deployment a request host
// name points at.
type Environment int

const (
	Development Environment = iota
	Staging
	Demo
	Production
)

func (e Environment) String() string {
	switch e {
	case Development:
		return "development"
	case Staging:
		return "staging"
	case Demo:
		return "demo"
	case Production:
		return "production"
	}
	return "staging"
}

// Resolve maps a host name to its deployment environment. Suffixes are
// checked in precedence order; anything unrecognized degrades to
// Staging rather than failing.
func Resolve(host string) Environment {
	switch {
	case strings.HasSuffix(host, "localhost"):
		return Development
	case strings.HasSuffix(host, ".staging.cambiatus.io"):
		return Staging
	case strings.HasSuffix(host, ".demo.cambiatus.io"):
		return Demo
	case strings.HasSuffix(host, ".cambiatus.io"):
		return Production
	default:
		return Staging
	}
}

// CommunityDomain derives the full community domain for a request host.
// Every host produces some domain; malformed hosts yield best-effort
// guesses, never errors.
func CommunityDomain(host string) string {
	parts := append(subdomainParts(host), "cambiatus", "io")
	return strings.Join(parts, ".")
}

// subdomainParts guesses the community subdomain labels from a host
// name. The "localhost" and "cambiatus" second-label special cases are
// load-bearing for real traffic and must not be collapsed into the
// generic pass-through branch.
func subdomainParts(host string) []string {
	env := Resolve(host)
	stagingLike := env == Development || env == Staging

	parts := strings.Split(host, ".")

	if len(parts) == 0 || (len(parts) == 1 && parts[0] == "") {
		sub := []string{"cambiatus"}
		if stagingLike {
			sub = append(sub, "staging")
		}
		return sub
	}

	if len(parts) == 1 {
		sub := []string{parts[0]}
		if stagingLike {
			sub = append(sub, "staging")
		}
		return sub
	}

	switch parts[1] {
	case "localhost":
		return []string{parts[0], "staging"}
	case "cambiatus":
		return []string{parts[0]}
	default:
		return []string{parts[0], parts[1]}
	}
}
