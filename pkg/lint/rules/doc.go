// Package rules contains the built-in rules shipped with mylint.
//
// Rules are registered with the default registry via init() functions when
// this package is imported:
//
//	import _ "github.com/RamilHin/my-linter/pkg/lint/rules"
//
// Built-in rules:
//   - naming-convention: declared names must satisfy the resolved naming
//     constraint (also registered as @typescript-eslint/naming-convention)
//   - id-length: declared names must be within min/max length
//
// Both rules read a Declarations tree. Parsers that produce a richer tree
// provide their own rules.
package rules
