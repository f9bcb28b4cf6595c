// Package scan provides the low-level text cursor used to parse MatrixMarket
// bodies and parallel index files, and the line writer used to emit them.
//
// A [Scanner] holds the complete input in memory and tracks a byte position,
// the same way the binary readers of a container format track a file offset.
// That makes rewinding (needed when a file has no valid banner) a matter of
// resetting the position. The primitives mirror what the format needs:
//
//   - [Scanner.LineBoundary] consumes blanks and a single line terminator
//   - [Scanner.SkipComments] skips %-comment and blank lines
//   - [Scanner.Token], [Scanner.Int] and [Scanner.Uint] read whitespace
//     delimited tokens, crossing line terminators
//
// [Writer] buffers output, counts the bytes written and remembers the first
// write error so callers can check once at the end.
package scan
