// Package buildinfo reports version data stamped in at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/eventdesk/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X github.com/dmitrijs2005/eventdesk/internal/buildinfo.buildDate=$(date -u +%F) \
//	  -X github.com/dmitrijs2005/eventdesk/internal/buildinfo.buildCommit=$(git rev-parse --short HEAD)" ./cmd/eventdesk
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes version, date and commit to w, one per line.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
