package linebreak

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/dillo-gui/dwcore/runmodel"
)

// terminalWidth reports the usable column width of fd, falling back to a
// fixed 65 columns when fd is not a terminal or its size cannot be read.
// Adapted from styled/formatter/console.go's ConfigFromTerminal heuristic.
func terminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return 65
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 65
	}
	switch {
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	default:
		return 10
	}
}

// DumpWidth returns the line width DumpLines should target when writing to
// stdout: the terminal's width if stdout is interactive, else a fixed 65.
func DumpWidth() int {
	return terminalWidth(int(os.Stdout.Fd()))
}

var (
	tooWideColor = color.New(color.FgRed)
	loooseColor  = color.New(color.FgYellow)
)

// DumpLines writes a one-line-per-Line summary of a finished lay-out to w,
// coloring lines that overflow maxWidth in red and lines under half of it in
// yellow, in the terminal-dump style of the teacher's
// ConsoleFixedWidth.Print (styled/formatter/console.go). It is a debugging
// aid for tests and any embedding CLI, not part of the line-breaking
// contract itself.
func DumpLines(w io.Writer, lb *LineBreaker, maxWidth int) {
	for i, ln := range lb.Lines() {
		width := ln.MaxLineWidth
		mark := " "
		switch ln.Alignment {
		case runmodel.Center:
			mark = "c"
		case runmodel.Right:
			mark = "r"
		}
		line := fmt.Sprintf("line %3d [%3d..%3d] top=%-5d w=%-5d %s", i, ln.FirstWord, ln.LastWord, ln.Top, width, mark)
		switch {
		case width > maxWidth:
			tooWideColor.Fprintln(w, line)
		case width < maxWidth/2:
			loooseColor.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
}
