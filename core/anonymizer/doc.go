// Package anonymizer provides pattern-based detection and redaction of
// personally identifiable information (PII) in free-form text. It recognizes
// email addresses, US phone numbers, social security numbers, HTTP/HTTPS URLs,
// IPv4 addresses, and credit-card-like digit sequences, replacing each match
// with a fixed placeholder token.
//
// # Basic Usage
//
// Use the package-level functions with the default pattern registry:
//
//	import "github.com/dilekatharuki/privacycore/core/anonymizer"
//
//	clean := anonymizer.Redact("Contact me at john.doe@email.com")
//	// Result: "Contact me at [EMAIL]"
//
//	found := anonymizer.Detect("My SSN is 123-45-6789")
//	// Result: map["ssn"]["123-45-6789"]
//
// For dependency injection (e.g. into a session store), construct an instance:
//
//	anon := anonymizer.New()
//	store := session.NewStore(session.WithAnonymizer(anon))
//
// # Redaction Semantics
//
// Patterns are applied in registry order, and each pattern scans the
// progressively redacted string. This ordering prevents a looser pattern from
// re-matching inside a span that a more specific pattern already replaced
// (e.g. the digits of a phone number inside an email's domain are gone by the
// time the phone pattern runs). Redaction is idempotent: placeholder tokens
// contain nothing any registered pattern can match.
//
// # Limitations
//
// Detection is heuristic and best-effort by design. Regular expressions cannot
// recognize names, street addresses, or indirect identifiers, and unusual
// formatting defeats the registered patterns. Callers must treat a clean
// result as "no PII found", never as "no PII present".
package anonymizer
