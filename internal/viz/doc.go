// Package viz provides terminal-based visualization for annotation tracks.
//
// The package implements an interactive frame scrubber using the Bubble Tea
// framework:
//
//   - [ScrubModel]: interactive playback over an interpolated track
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//
// # Key Bindings
//
//	Space   - Play/Pause playback
//	h/l     - Step one frame back/forward
//	g/home  - Jump to first frame
//	G/end   - Jump to last frame
//	q       - Quit
package viz
