package view

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"wraplife/src/simulation"
)

var (
	reportBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	reportTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	reportLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))
)

//ConsoleOut is the non-interactive viewer, prints the progress and the final report
type ConsoleOut struct {
	r         *simulation.Runner
	w         io.Writer
	startTime time.Time
	plot      bool
	lastShown int
	done      chan struct{}
}

//NewConsoleOut creates the viewer writing to stdout
//plot enables the population chart in the final report
func NewConsoleOut(plot bool) *ConsoleOut {
	return NewConsoleOutTo(os.Stdout, plot)
}

func NewConsoleOutTo(w io.Writer, plot bool) *ConsoleOut {
	return &ConsoleOut{w: w, plot: plot, lastShown: -1, done: make(chan struct{})}
}

func (c *ConsoleOut) Refresh() {
	st := c.r.Status()
	switch st.RunningMode {
	case simulation.RunningStateFinished:
		select {
		case <-c.done:
			return
		default:
		}
		_, _ = fmt.Fprintln(c.w, c.Report(st, time.Since(c.startTime)))
		close(c.done)
	case simulation.RunningStateRun, simulation.RunningStateManual:
		if st.Generation%10 == 0 && st.Generation != c.lastShown {
			c.lastShown = st.Generation
			_, _ = fmt.Fprintf(c.w, "  Generations done: %v, live cells: %v\n", st.Generation, st.LiveCells)
		}
	}
}

func (c *ConsoleOut) Register(r *simulation.Runner) {
	c.r = r
	o := r.Options()
	w, h := r.Dimension()
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", w, h),
		"Interval":       o.Interval,
		"Max iterations": fmt.Sprintf("%v steps", o.MaxSteps),
		"Storage":        r.Status().Storage,
	})
}

//Done is closed when the final report is written
func (c *ConsoleOut) Done() <-chan struct{} {
	return c.done
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
}

//Report renders the final report box
func (c *ConsoleOut) Report(st simulation.Status, total time.Duration) string {
	rows := []string{reportTitle.Render("Finished")}
	rows = append(rows,
		c.reportRow("Last generation", st.Generation),
		c.reportRow("Total time", total.Round(time.Millisecond)),
		c.reportRow("Live cells", st.LiveCells),
		c.reportRow("Last tick time", st.IterationTime.Round(time.Microsecond)),
	)
	if c.plot {
		if chart := PopulationChart(c.r.History()); chart != "" {
			rows = append(rows, "", chart)
		}
	}
	return reportBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c *ConsoleOut) reportRow(name string, value interface{}) string {
	return reportLabel.Render(name+":") + " " + fmt.Sprint(value)
}

//PopulationChart plots the live cells count over the generations
//returns the empty string when there is nothing to plot
func PopulationChart(history []int) string {
	if len(history) < 2 {
		return ""
	}
	data := make([]float64, len(history))
	for i, n := range history {
		data[i] = float64(n)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("live cells"),
	)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}

//Text renders the frame with the universe glyphs, one line per row
func Text(f simulation.Frame) string {
	var b strings.Builder
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			b.WriteRune(f.At(x, y).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
