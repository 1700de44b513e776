// Package interact drives a plot session from discrete key presses.
//
// One key maps to one viewport change followed by one full redraw:
//
//	z     - zoom in (x2)
//	x     - zoom out (/2)
//	w/a/s/d - pan up/left/down/right
//	e     - toggle axis overlay
//	r     - reset zoom and center
//	k     - quit
//
// Any other key leaves the viewport alone but still redraws, so the
// status line always matches the image on disk.
package interact
