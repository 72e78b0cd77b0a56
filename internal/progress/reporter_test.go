package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}

	r.Start(2, "Importing resources")
	r.Update(1, "Glide Memorial Church")
	r.Update(2, "Bay Area Legal Aid")
	r.Finish()

	assert.Equal(t, "Importing resources: 2 item(s)\n"+
		"[1/2] Glide Memorial Church\n"+
		"[2/2] Bay Area Legal Aid\n"+
		"Importing resources: done\n", buf.String())
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	_, ok := NewReporter().(*CIReporter)
	assert.True(t, ok)
}

func TestDiscard(t *testing.T) {
	var r Reporter = Discard{}
	r.Start(1, "x")
	r.Update(1, "y")
	r.Finish()
}
