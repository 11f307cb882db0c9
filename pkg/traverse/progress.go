package traverse

import (
	"fmt"
	"io"
)

// lineWidth is how many dots fit on one progress line.
const lineWidth = 100

// DotWriter prints one dot per processed item, breaking the line every
// hundred dots so long walks stay readable on a terminal.
type DotWriter struct {
	W     io.Writer
	count int
}

func (d *DotWriter) Tick() {
	d.count++
	fmt.Fprint(d.W, ".")
	if d.count%lineWidth == 0 {
		fmt.Fprintln(d.W)
	}
}

// Finish terminates a partially filled dot line. Safe to call when no
// dots were written.
func (d *DotWriter) Finish() {
	if d.count%lineWidth != 0 {
		fmt.Fprintln(d.W)
	}
}
