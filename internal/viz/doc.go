// Package viz provides terminal views of a finished run.
//
//   - [Player]: Bubble Tea model that replays the frame log in truecolor
//   - [PlotRemovals]: ASCII chart of removals per round
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	←/→   - Step one frame back/forward (pauses)
//	+/-   - Faster/slower
//	R     - Restart from the first frame
//	Q     - Quit
package viz
