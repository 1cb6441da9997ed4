// Package editor provides a Bubble Tea single-line input component backed by
// the sledit edit core.
//
// The package is responsible for key and mouse handling, horizontal
// scrolling, and rendering the visual glyph order with the selection
// highlight. Text is laid out in terminal cells; all bidi decisions are left
// to the control.
package editor
