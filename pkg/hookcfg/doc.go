// Package hookcfg repairs the hooks section of a .claude/settings.json
// document, migrating entries written in older formats to the current one.
//
// Three normalizations are applied:
//
//   - SessionStart and SessionEnd hook lists written as bare hook arrays are
//     wrapped in a single {"hooks": [...]} entry (these events take no
//     matcher).
//   - Empty-object matchers on SessionStart/SessionEnd entries are removed.
//   - PostToolUse matchers written as objects ({"tools": ["A","B"]}) or other
//     non-string values are coerced to string patterns ("A|B").
//
// Fix applies the patch in place on a settings file; Apply is the pure
// transformation on an already decoded document.
package hookcfg
