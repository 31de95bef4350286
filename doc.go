// main allows you to build tmg binary
// # tmg
//
// Generate markdown tables from TypeScript interfaces.
//
// Every `interface` declaration in the source file becomes its own section with
// a `| Field | Type |` table. Optional fields (`name?: type`) are marked with
// `(optional)`. Parsing is line based: only single line `name: type;` fields
// inside a block closed by a line with lone `}` are recognized.
//
// ## Usage
//
//	tmg --source-filepath api.ts [--prefix "###"] [--exported-only] [--watch]
//
// writes api.md next to api.ts. Old api.md is removed first.
//
// ## Build binary
//
// `go build tmg.go` will produce you tmg binary.
package main
