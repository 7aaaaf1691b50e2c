// Package viz draws diagrams in the terminal.
//
// The package renders onto a Braille [Canvas] (2x4 dots per cell) and
// colours each cell with the palette entry of the longest chord through it:
//
//   - [Render]: one-shot preview of a built diagram
//   - [Explorer]: interactive Bubble Tea model
//
// # Key Bindings
//
//	←/→       - Multiplier down/up
//	↑/↓       - Modulus up/down
//	PgUp/PgDn - Modulus ±10
//	P         - Cycle palettes
//	C         - Toggle outline circle
//	?         - Show help
//	Q         - Quit
package viz
