package resource

import (
	"regexp"
	"strings"
)

var (
	// urlPattern matches network urls with an optional user, a host name or
	// IPv4 address, an optional port, path and query, and file urls with an
	// absolute path. Commas and quotes may appear inside a path but never end it.
	urlPattern = regexp.MustCompile(
		`(?:(?:https?|ftps?|sftp)://` +
			`(?:[a-zA-Z0-9._]+(?::[a-zA-Z0-9%._+~#=]+)?@)?` +
			`(?:(?:www\.)?[-a-zA-Z0-9%._+~#=]+\.[a-z]{2,6}|(?:[0-9]{1,3}\.){3}[0-9]{1,3})` +
			`(?::[0-9]+)?` +
			`(?:/(?:[-a-zA-Z0-9'@:%_+.,~#&/=()]*[-a-zA-Z0-9@:%_+.~#&/=()])?)?` +
			`(?:\?[-a-zA-Z0-9@:%_+.~#&/=()]*)*` +
			`|file:///[-a-zA-Z0-9@:%_+.~#&/=()]+)`,
	)

	domainPattern = regexp.MustCompile(`^(?:(?:https?|ftps?|sftp|file)://)?(?:[^@/]+@)?(?:www\.)?([\w%-]+(?:\.[\w%-]+)+)`)
)

// Extract returns the distinct urls found in v, in the order they first appear.
// Anything that is not text yields no urls.
func Extract(v any) []string {
	var text string
	switch value := v.(type) {
	case string:
		text = value
	case *string:
		if value == nil {
			return []string{}
		}
		text = *value
	case []byte:
		text = string(value)
	default:
		return []string{}
	}

	return dedupe(urlPattern.FindAllString(text, -1))
}

// ExtractFromAll scans every value and returns the distinct urls across all of them.
func ExtractFromAll(values []string) []string {
	var urls []string
	for _, value := range values {
		urls = append(urls, Extract(value)...)
	}

	return dedupe(urls)
}

// Domain returns the host of url without a leading www, or an empty string
// when url has no recognisable host.
func Domain(url string) string {
	match := domainPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}

	return strings.ToLower(match[1])
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}

	return out
}
