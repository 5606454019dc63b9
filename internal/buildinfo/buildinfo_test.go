package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", buf.String())
}

func TestPrintBuildData_Stamped(t *testing.T) {
	orig := [3]string{buildVersion, buildDate, buildCommit}
	t.Cleanup(func() { buildVersion, buildDate, buildCommit = orig[0], orig[1], orig[2] })

	buildVersion, buildDate, buildCommit = "v1.2.0", "2025-08-08", "abc123"

	var buf bytes.Buffer
	PrintBuildData(&buf)
	assert.Contains(t, buf.String(), "Build version: v1.2.0")
	assert.Contains(t, buf.String(), "Build commit: abc123")
}
