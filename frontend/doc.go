// Package frontend parses the line-oriented conlog textual language into
// a core.Graph.
//
// Syntax (DOT-like):
//
//	node      = node-name ("[" var-name ("+=" | "-=" | "++?" | "--?") (var-name | const) "]")?
//	          | node-name "[" ("iprint" | "uprint") (var-name | const) "]"
//	statement = var-name "=" (const | "?")
//	          | node ("--" node)*
//	program   = statement (";" statement)* ";"?
//
// Constants are signed decimal integers, optionally digit-grouped with
// apostrophes (1'000'000), or character literals ('x, meaning the
// codepoint). Variables not explicitly set to a constant or "?" are
// implicitly free. Nodes never given an operation are plain junctions.
// Two node names are reserved: "initial" and "final"; they carry the
// Initial and Terminal operations and cannot be given others. Comments
// run from "//" to end of line.
//
// Automutation (x += x) is rejected: the solver's inverse semantics
// cannot invert it.
//
// Errors carry the line, column, and width of the offending tokens and
// unwrap to ErrParse.
package frontend
