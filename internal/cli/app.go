package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-bundle-composer/internal/adapter"
	"github.com/MKhiriev/go-bundle-composer/internal/app"
	"github.com/MKhiriev/go-bundle-composer/internal/config"
	"github.com/MKhiriev/go-bundle-composer/internal/logger"
	"github.com/MKhiriev/go-bundle-composer/internal/service"
	"github.com/MKhiriev/go-bundle-composer/internal/store"
	"github.com/MKhiriev/go-bundle-composer/models"
)

const role = "go-bundle-composer"

type App struct {
	buildInfo models.AppBuildInfo
	out       io.Writer

	flags *config.Flags

	// newLogger and copyToClipboard are swapped in tests.
	newLogger       func(format string) *logger.Logger
	copyToClipboard func(text string) error
}

// session is the wiring built for a single command invocation.
type session struct {
	cfg      *config.StructuredConfig
	log      *logger.Logger
	services *service.Services
}

// NewApp constructs the CLI application. Composed output and reports are
// written to out, logs go to stderr.
func NewApp(buildInfo models.AppBuildInfo, out io.Writer) *App {
	return &App{
		buildInfo:       buildInfo,
		out:             out,
		newLogger:       newLogger,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Run implements [Runner].
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	return root.ExecuteContext(ctx)
}

func newLogger(format string) *logger.Logger {
	return logger.New(format, role)
}

// setup loads the configuration and builds the services. The runtime adapter
// is only created when a runtime address is configured.
func (a *App) setup() (*session, error) {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := a.newLogger(cfg.App.LogFormat)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, err
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.ProfileDefaulted {
		log.Warn().Str("profile", cfg.Environment).Msg(app.MsgProfileDefaulted)
	}

	var runtime adapter.RuntimeAdapter
	if cfg.Adapter.HTTPAddress != "" {
		runtime, err = adapter.NewHTTPRuntimeAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("create runtime adapter: %w", err)
		}
	}

	services, err := service.NewServices(store.NewStorages(a.out, log), runtime, cfg, a.buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &session{cfg: cfg, log: log, services: services}, nil
}
