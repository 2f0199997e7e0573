// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bundle-composer/internal/composer"
	"github.com/MKhiriev/go-bundle-composer/internal/config"
	"github.com/MKhiriev/go-bundle-composer/internal/logger"
	"github.com/MKhiriev/go-bundle-composer/internal/mock"
	"github.com/MKhiriev/go-bundle-composer/internal/store"
	"github.com/MKhiriev/go-bundle-composer/models"
)

const basePath = "webpack.base.json"

type composeFixture struct {
	storage *mock.MockConfigStorage
	runtime *mock.MockRuntimeAdapter
	svc     ComposeService
}

func newComposeFixture(t *testing.T) composeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := composeFixture{
		storage: mock.NewMockConfigStorage(ctrl),
		runtime: mock.NewMockRuntimeAdapter(ctrl),
	}
	f.svc = NewComposeService(f.storage, composer.New(composer.DefaultOptions(), nil), f.runtime,
		config.Build{BasePath: basePath}, logger.Nop())
	return f
}

// ─────────────────────────────────────────────
// Compose
// ─────────────────────────────────────────────

func TestComposeService_Compose(t *testing.T) {
	f := newComposeFixture(t)
	ctx := context.Background()

	f.storage.EXPECT().LoadBase(ctx, basePath).Return(models.DefaultBase(), nil)

	cc, err := f.svc.Compose(ctx, models.Production)
	require.NoError(t, err)
	assert.Equal(t, models.Production, cc.Profile())
	assert.NotEmpty(t, cc.Fingerprint())
}

func TestComposeService_ComposeReadsBaseEveryCall(t *testing.T) {
	f := newComposeFixture(t)
	ctx := context.Background()

	changed := models.DefaultBase()
	changed.Output.Path = "build"

	gomock.InOrder(
		f.storage.EXPECT().LoadBase(ctx, basePath).Return(models.DefaultBase(), nil),
		f.storage.EXPECT().LoadBase(ctx, basePath).Return(changed, nil),
	)

	first, err := f.svc.Compose(ctx, models.Development)
	require.NoError(t, err)
	second, err := f.svc.Compose(ctx, models.Development)
	require.NoError(t, err)

	assert.NotEqual(t, first.Fingerprint(), second.Fingerprint())
	assert.Equal(t, "build", second.Config().Output.Path)
}

func TestComposeService_ComposeErrors(t *testing.T) {
	t.Run("base not found", func(t *testing.T) {
		f := newComposeFixture(t)
		f.storage.EXPECT().LoadBase(gomock.Any(), basePath).Return(models.BuildConfiguration{}, store.ErrBaseNotFound)

		_, err := f.svc.Compose(context.Background(), models.Development)
		assert.ErrorIs(t, err, store.ErrBaseNotFound)
	})

	t.Run("invalid profile", func(t *testing.T) {
		f := newComposeFixture(t)
		f.storage.EXPECT().LoadBase(gomock.Any(), basePath).Return(models.DefaultBase(), nil)

		_, err := f.svc.Compose(context.Background(), "staging")
		assert.ErrorIs(t, err, models.ErrInvalidEnvironmentProfile)
	})
}

// ─────────────────────────────────────────────
// Export
// ─────────────────────────────────────────────

func TestComposeService_Export(t *testing.T) {
	f := newComposeFixture(t)
	ctx := context.Background()

	f.storage.EXPECT().LoadBase(ctx, basePath).Return(models.DefaultBase(), nil)
	f.storage.EXPECT().
		SaveComposed(ctx, "out.yaml", models.FormatYAML, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.OutputFormat, cc models.ComposedConfiguration) error {
			assert.Equal(t, models.Development, cc.Profile())
			return nil
		})

	cc, err := f.svc.Export(ctx, models.Development, "out.yaml", models.FormatYAML)
	require.NoError(t, err)
	assert.False(t, cc.IsZero())
}

func TestComposeService_ExportSaveFails(t *testing.T) {
	f := newComposeFixture(t)
	boom := errors.New("disk full")

	f.storage.EXPECT().LoadBase(gomock.Any(), basePath).Return(models.DefaultBase(), nil)
	f.storage.EXPECT().SaveComposed(gomock.Any(), "", models.FormatJSON, gomock.Any()).Return(boom)

	cc, err := f.svc.Export(context.Background(), models.Production, "", models.FormatJSON)
	assert.ErrorIs(t, err, boom)
	assert.True(t, cc.IsZero())
}

func TestComposeService_ExportSkipsSaveOnCompositionError(t *testing.T) {
	f := newComposeFixture(t)

	f.storage.EXPECT().LoadBase(gomock.Any(), basePath).Return(models.DefaultBase(), nil)
	f.storage.EXPECT().SaveComposed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Export(context.Background(), "qa", "", models.FormatJSON)
	assert.ErrorIs(t, err, models.ErrInvalidEnvironmentProfile)
}

// ─────────────────────────────────────────────
// Deliver
// ─────────────────────────────────────────────

func TestComposeService_Deliver(t *testing.T) {
	tests := []struct {
		profile models.Profile
		expect  func(f composeFixture)
	}{
		{
			profile: models.Production,
			expect: func(f composeFixture) {
				f.runtime.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			profile: models.Development,
			expect: func(f composeFixture) {
				f.runtime.EXPECT().Serve(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile.String(), func(t *testing.T) {
			f := newComposeFixture(t)
			f.storage.EXPECT().LoadBase(gomock.Any(), basePath).Return(models.DefaultBase(), nil)
			tt.expect(f)

			cc, err := f.svc.Deliver(context.Background(), tt.profile)
			require.NoError(t, err)
			assert.Equal(t, tt.profile, cc.Profile())
		})
	}
}

func TestComposeService_DeliverRuntimeError(t *testing.T) {
	f := newComposeFixture(t)
	boom := errors.New("connection refused")

	f.storage.EXPECT().LoadBase(gomock.Any(), basePath).Return(models.DefaultBase(), nil)
	f.runtime.EXPECT().Run(gomock.Any(), gomock.Any()).Return(boom)

	_, err := f.svc.Deliver(context.Background(), models.Production)
	assert.ErrorIs(t, err, boom)
}

func TestComposeService_DeliverWithoutRuntime(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockConfigStorage(ctrl)
	storage.EXPECT().LoadBase(gomock.Any(), gomock.Any()).Times(0)

	svc := NewComposeService(storage, composer.New(composer.DefaultOptions(), nil), nil, config.Build{}, logger.Nop())

	_, err := svc.Deliver(context.Background(), models.Production)
	assert.ErrorIs(t, err, ErrRuntimeNotConfigured)
}

// ─────────────────────────────────────────────
// ComposerOptions / NewServices
// ─────────────────────────────────────────────

func TestComposerOptions(t *testing.T) {
	assert.Equal(t, composer.DefaultOptions(), ComposerOptions(config.Build{}))

	opts := ComposerOptions(config.Build{
		DevServerHost: "127.0.0.1",
		DevServerPort: 9000,
		VendorModules: []string{"vue", "vuex"},
	})
	assert.Equal(t, "127.0.0.1", opts.DevServer.Host)
	assert.Equal(t, 9000, opts.DevServer.Port)
	assert.True(t, opts.DevServer.Hot)
	assert.Equal(t, []string{"vue", "vuex"}, opts.VendorModules)
}

func TestNewServices(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(store.NewStorages(nil, logger.Nop()), nil, cfg, noBuildInfo, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.ComposeService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))

	_, err = NewServices(store.NewStorages(nil, logger.Nop()), nil, &config.StructuredConfig{}, noBuildInfo, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
