// Package lang defines the closed set of languages the notification helper
// ships translations for, together with the canonical fallback language.
//
// Both the settings validator and the template resolver consult this package,
// so there is exactly one place where the supported set is maintained. The
// order returned by Supported is fixed and meaningful: listings of available
// template languages are reported in this order.
//
// Normalize maps regional variants onto a supported base code using
// golang.org/x/text/language, so callers holding tags like "ko-KR" or
// "zh-Hans" can still hit the right template document:
//
//	code := lang.Normalize("ko-KR") // "ko"
package lang
