// Command memclip keeps the clipboards of several devices in sync through a
// memclip hub.
package main

import (
	"os"

	"github.com/MKhiriev/memclip/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCmd(build).Execute(); err != nil {
		os.Exit(1)
	}
}
