// Package sledit implements the edit core of a single-line bidirectional text
// control.
//
// A Control owns the logical text, the visual glyph map shaped from it and
// the caret and selection marks, which are glyph indices in visual order.
// Every edit runs splice, reshape and caret recomputation as one cycle; the
// marks are never observed against a stale glyph map.
//
// Control is not safe for concurrent use. It is meant to be driven from one
// UI goroutine.
package sledit
