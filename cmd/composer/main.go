package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-bundle-composer/internal/cli"
	"github.com/MKhiriev/go-bundle-composer/internal/logger"
	"github.com/MKhiriev/go-bundle-composer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app := cli.NewApp(buildInfo, os.Stdout)
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		log := logger.NewLogger("go-bundle-composer")
		log.Fatal().Err(err).Msg("composer failed")
	}
}
