package cmd

import (
	"fmt"
	"io"
	"time"

	"daogen/internal/schema"
)

// Rough cost of hand-writing the model layer for one table.
const (
	hoursPerTable = 5
	hoursPerDay   = 6.0
)

// Report summarizes one run for humans.
type Report struct {
	Database string
	Tables   int
	Elapsed  time.Duration
}

func newReport(db *schema.Database, elapsed time.Duration) Report {
	return Report{Database: db.Name(), Tables: len(db.Tables()), Elapsed: elapsed}
}

func (r Report) ManHours() int { return r.Tables * hoursPerTable }

func (r Report) ManDays() float64 { return float64(r.ManHours()) / hoursPerDay }

// Speedup compares the estimated manual effort with the elapsed time. It
// is zero when nothing was timed.
func (r Report) Speedup() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.ManHours()) * 3600 / r.Elapsed.Seconds()
}

func (r Report) WriteHeader(w io.Writer) {
	fmt.Fprintf(w, "Generating from Database `%s`, %d tables\n\n", r.Database, r.Tables)
}

func (r Report) WriteSummary(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Operation took %.3f seconds\n", r.Elapsed.Seconds())
	fmt.Fprintf(w, "Estimated saving %d man-hours (%.1f man-days)\n", r.ManHours(), r.ManDays())
	if s := r.Speedup(); s > 0 {
		fmt.Fprintf(w, "> This was done ~%.3f times faster than manually coding it\n", s)
	}
}
