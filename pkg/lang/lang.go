package lang

import (
	"slices"

	"golang.org/x/text/language"
)

// Fallback is the canonical language. Its template document is expected to
// contain every template key; all other languages are partial overlays.
const Fallback = "en"

// supported is the closed, ordered set of language codes with bundled
// translations. The order is the reporting order for language listings.
var supported = []string{"en", "ko", "ja", "zh"}

// Supported returns the supported language codes in their fixed order.
// The returned slice is a copy and safe to modify.
func Supported() []string {
	return slices.Clone(supported)
}

// IsSupported reports whether code is one of the supported language codes.
// Matching is exact; use Normalize first to fold regional variants.
func IsSupported(code string) bool {
	return slices.Contains(supported, code)
}

// Normalize folds a BCP 47 tag onto a supported base language code, e.g.
// "ko-KR" -> "ko" and "zh-Hans-CN" -> "zh". Tags that cannot be parsed or
// whose base language is not supported are returned unchanged, leaving the
// caller to apply its own fallback policy.
func Normalize(tag string) string {
	if IsSupported(tag) {
		return tag
	}

	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}

	base, conf := t.Base()
	if conf == language.No {
		return tag
	}

	if code := base.String(); IsSupported(code) {
		return code
	}
	return tag
}
