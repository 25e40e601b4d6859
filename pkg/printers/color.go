package printers

import (
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	lowScore  = mustHex("#e06c75")
	midScore  = mustHex("#e5c07b")
	highScore = mustHex("#98c379")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorEnabled reports whether output written to w should carry color:
// w must be a terminal and NO_COLOR must be unset.
func ColorEnabled(w io.Writer) bool {
	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ScoreColor blends from red through yellow to green as score moves from
// lo to hi.
func ScoreColor(score, lo, hi int) colorful.Color {
	if hi <= lo {
		return highScore
	}
	t := float64(score-lo) / float64(hi-lo)
	switch {
	case t <= 0:
		return lowScore
	case t >= 1:
		return highScore
	case t < 0.5:
		return lowScore.BlendLab(midScore, t*2).Clamped()
	default:
		return midScore.BlendLab(highScore, (t-0.5)*2).Clamped()
	}
}

func (pp *PrettyPrint) paint(s string, score, lo, hi int) string {
	if !pp.useColor() {
		return s
	}
	profile := termenv.EnvColorProfile()
	return termenv.String(s).Foreground(profile.Color(ScoreColor(score, lo, hi).Hex())).String()
}
