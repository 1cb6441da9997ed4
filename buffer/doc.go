// Package buffer implements the logical text store of a single-line edit
// control.
//
// Text is kept in storage (logical) order as raw bytes. The buffer knows
// nothing about display direction; offsets are byte offsets in [0, Len()].
package buffer
