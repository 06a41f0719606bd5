package provider

import "regexp"

// Redaction is a best-effort filter applied to commit messages before
// they leave the machine. It catches credential-looking strings and
// internal hostnames; it is not a security guarantee, and the prompt
// additionally instructs the model to drop anything sensitive.

const redactedToken = "[REDACTED]"

var redactionPatterns = []*regexp.Regexp{
	// provider and platform API keys (GitHub ghp_/gho_/ghs_..., OpenAI sk-, AWS AKIA)
	regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{16,}\b`),
	regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{16,}\b`),
	regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
	// bearer/basic authorization values
	regexp.MustCompile(`(?i)\b(?:bearer|basic)\s+[A-Za-z0-9._~+/=-]{8,}`),
	// long hex blobs (session ids, digests used as secrets)
	regexp.MustCompile(`\b[0-9a-fA-F]{32,}\b`),
	// key=value style secrets
	regexp.MustCompile(`(?i)\b(?:password|passwd|secret|token|api[_-]?key)\s*[=:]\s*\S+`),
}

// URLs with embedded credentials: keep the scheme, drop the userinfo.
var urlUserinfoPattern = regexp.MustCompile(`([a-z][a-z0-9+.-]*://)[^/\s@]+@`)

// Hostnames on common internal-only TLDs.
var internalHostPattern = regexp.MustCompile(`\b[a-zA-Z0-9][a-zA-Z0-9.-]*\.(?:internal|local|corp|intranet|lan)\b`)

// Redact replaces credential-looking substrings and internal hostnames
// in a single commit message.
func Redact(message string) string {
	out := urlUserinfoPattern.ReplaceAllString(message, "${1}"+redactedToken+"@")
	for _, p := range redactionPatterns {
		out = p.ReplaceAllString(out, redactedToken)
	}
	out = internalHostPattern.ReplaceAllString(out, redactedToken)
	return out
}

// RedactAll applies Redact to every message, returning a new slice.
func RedactAll(messages []string) []string {
	out := make([]string, len(messages))
	for i, m := range messages {
		out[i] = Redact(m)
	}
	return out
}
