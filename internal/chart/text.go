package chart

import (
	"fmt"
	"io"
	"math"
	"strings"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// TextRenderer draws each dataset as a one-line sparkline, for terminals.
type TextRenderer struct {
	W     io.Writer
	Width int // maximum number of samples per line; 0 keeps every sample
}

type textHandle struct{}

func (textHandle) Release() error { return nil }

// Render writes one line per dataset: label, sparkline, first and last value.
func (r TextRenderer) Render(cfg Config) (Handle, error) {
	labelWidth := 0
	for _, ds := range cfg.Data.Datasets {
		labelWidth = max(labelWidth, len([]rune(ds.Label)))
	}
	for _, ds := range cfg.Data.Datasets {
		values := downsample(ds.Data, r.Width)
		pad := strings.Repeat(" ", labelWidth-len([]rune(ds.Label)))
		first, last := 0.0, 0.0
		if len(ds.Data) > 0 {
			first, last = ds.Data[0], ds.Data[len(ds.Data)-1]
		}
		if _, err := fmt.Fprintf(r.W, "%s%s  %s  %.0f → %.0f\n", ds.Label, pad, Sparkline(values), first, last); err != nil {
			return nil, err
		}
	}
	return textHandle{}, nil
}

// Sparkline maps values onto eight block levels between their minimum and maximum
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	var b strings.Builder
	top := len(sparkLevels) - 1
	for _, v := range values {
		level := 0
		if hi > lo {
			level = int(math.Round((v - lo) / (hi - lo) * float64(top)))
		}
		level = min(max(level, 0), top)
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}

// downsample keeps at most n evenly spaced samples, always including the last one
func downsample(values []float64, n int) []float64 {
	if n <= 1 || len(values) <= n {
		return values
	}
	out := make([]float64, 0, n)
	step := float64(len(values)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		out = append(out, values[int(math.Round(float64(i)*step))])
	}
	return out
}
