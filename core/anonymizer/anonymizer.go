package anonymizer

import "regexp"

// pattern pairs a PII label with its detection regexp and the placeholder
// token that replaces matches during redaction.
type pattern struct {
	label       string
	placeholder string
	re          *regexp.Regexp
}

// defaultPatterns is the ordered registry. Order matters: more specific
// patterns (email) run before patterns that could spuriously match a
// substring of them (phone, IP). Redaction applies each pattern to the
// progressively redacted string, so earlier replacements shield their spans
// from later patterns.
var defaultPatterns = []pattern{
	{
		label:       "email",
		placeholder: "[EMAIL]",
		re:          regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	},
	{
		label:       "phone",
		placeholder: "[PHONE]",
		re:          regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
	},
	{
		label:       "ssn",
		placeholder: "[SSN]",
		re:          regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	},
	{
		label:       "url",
		placeholder: "[URL]",
		// The $-_ range covers the URL-safe punctuation block, including
		// slashes, query separators, and colons.
		re:          regexp.MustCompile(`https?://[A-Za-z0-9$-_.+!*(),%]+`),
	},
	{
		label:       "ip_address",
		placeholder: "[IP]",
		re:          regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
	},
	{
		label:       "credit_card",
		placeholder: "[CREDIT_CARD]",
		re:          regexp.MustCompile(`\b(?:\d{4}[-\s]?){3}\d{4}\b`),
	},
}

// Anonymizer scans and rewrites text using an ordered PII pattern registry.
// The zero value is not usable; construct instances with New.
type Anonymizer struct {
	patterns []pattern
}

// New returns an Anonymizer with the default pattern registry.
func New() *Anonymizer {
	return &Anonymizer{patterns: defaultPatterns}
}

// Detect scans text and reports every match per PII label, in pattern order
// within each label. The input is never modified and the scan never fails;
// text without recognizable PII yields an empty map.
func (a *Anonymizer) Detect(text string) map[string][]string {
	detected := make(map[string][]string)
	for _, p := range a.patterns {
		if matches := p.re.FindAllString(text, -1); len(matches) > 0 {
			detected[p.label] = matches
		}
	}
	return detected
}

// Redact replaces every match of every registered pattern with the pattern's
// placeholder token, applying patterns in registry order against the
// progressively redacted string. Redaction is idempotent.
func (a *Anonymizer) Redact(text string) string {
	redacted := text
	for _, p := range a.patterns {
		redacted = p.re.ReplaceAllString(redacted, p.placeholder)
	}
	return redacted
}

var defaultAnonymizer = New()

// Detect scans text with the default registry. See Anonymizer.Detect.
func Detect(text string) map[string][]string {
	return defaultAnonymizer.Detect(text)
}

// Redact rewrites text with the default registry. See Anonymizer.Redact.
func Redact(text string) string {
	return defaultAnonymizer.Redact(text)
}
