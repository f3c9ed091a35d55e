package cmd

import (
	"bytes"
	"testing"
	"time"

	"daogen/internal/schema"

	"github.com/stretchr/testify/assert"
)

func TestReport(t *testing.T) {
	r := Report{Database: "shop", Tables: 12, Elapsed: 2 * time.Second}

	assert.Equal(t, 60, r.ManHours())
	assert.InDelta(t, 10.0, r.ManDays(), 1e-9)
	assert.InDelta(t, 108000.0, r.Speedup(), 1e-6)

	var buf bytes.Buffer
	r.WriteHeader(&buf)
	r.WriteSummary(&buf)

	assert.Equal(t, "Generating from Database `shop`, 12 tables\n\n"+
		"\nOperation took 2.000 seconds\n"+
		"Estimated saving 60 man-hours (10.0 man-days)\n"+
		"> This was done ~108000.000 times faster than manually coding it\n", buf.String())
}

func TestReport_NoElapsed(t *testing.T) {
	db := schema.Build("CREATE TABLE a (id INT)", schema.Config{})
	r := newReport(db, 0)

	assert.Equal(t, schema.UnknownDatabase, r.Database)
	assert.Equal(t, 1, r.Tables)
	assert.Zero(t, r.Speedup())

	var buf bytes.Buffer
	r.WriteSummary(&buf)
	assert.NotContains(t, buf.String(), "faster")
}
