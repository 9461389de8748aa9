// Package buildconfig loads and validates a BuildConfig: the YAML map
// template a CLI or other external caller resolves before handing it to the
// Builder. It lives alongside the core packages, not inside them — the core
// accepts a parsed, validated BuildConfig, never raw YAML.
//
// Parses with gopkg.in/yaml.v3, auto-generates a seed from crypto/rand when
// the document omits one, validates field ranges, and can hash the document
// deterministically (Hash).
package buildconfig
