// Command memclip-hub relays clipboard documents between memclip clients.
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
