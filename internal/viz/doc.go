// Package viz provides a Bubble Tea view of the fire.
//
// The fire is coloured through a lipgloss [Theme] ramp and a side pane shows
// heat statistics with an asciigraph history plot.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle colour themes
//	S     - Toggle stats pane
//	Q     - Quit
package viz
