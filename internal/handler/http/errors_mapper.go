package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bundle-composer/internal/adapter"
	"github.com/MKhiriev/go-bundle-composer/internal/app"
	"github.com/MKhiriev/go-bundle-composer/internal/composer"
	"github.com/MKhiriev/go-bundle-composer/internal/service"
	"github.com/MKhiriev/go-bundle-composer/internal/store"
	"github.com/MKhiriev/go-bundle-composer/models"
)

type errorStatus struct {
	status int
	msg    string
}

var errorStatusMap = []struct {
	target error
	errorStatus
}{
	{models.ErrInvalidEnvironmentProfile, errorStatus{http.StatusBadRequest, app.MsgUnknownProfile}},
	{composer.ErrInconsistentConfiguration, errorStatus{http.StatusUnprocessableEntity, app.MsgInconsistentConfiguration}},

	{store.ErrBaseNotFound, errorStatus{http.StatusServiceUnavailable, app.MsgBaseUnavailable}},
	{store.ErrUnsupportedBaseFormat, errorStatus{http.StatusServiceUnavailable, app.MsgBaseUnavailable}},
	{store.ErrParsingBase, errorStatus{http.StatusServiceUnavailable, app.MsgBaseUnavailable}},

	{service.ErrRuntimeNotConfigured, errorStatus{http.StatusBadGateway, app.MsgRuntimeUnavailable}},
	{adapter.ErrConflict, errorStatus{http.StatusBadGateway, app.MsgRuntimeUnavailable}},
	{adapter.ErrBadGateway, errorStatus{http.StatusBadGateway, app.MsgRuntimeUnavailable}},
	{adapter.ErrConfigurationRejected, errorStatus{http.StatusBadGateway, app.MsgRuntimeUnavailable}},
	{adapter.ErrInternalServerError, errorStatus{http.StatusBadGateway, app.MsgRuntimeUnavailable}},
	{adapter.ErrRuntimeUnavailable, errorStatus{http.StatusBadGateway, app.MsgRuntimeUnavailable}},
}

func statusFromError(err error) (int, string) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status, entry.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
