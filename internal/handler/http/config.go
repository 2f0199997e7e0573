// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-bundle-composer/internal/app"
	"github.com/MKhiriev/go-bundle-composer/internal/logger"
	"github.com/MKhiriev/go-bundle-composer/internal/utils"
	"github.com/MKhiriev/go-bundle-composer/models"
)

const profileHeader = "X-Config-Profile"

// getComposedConfig serves the configuration composed for the profile in the
// path. The fingerprint doubles as a strong ETag, so clients polling with
// If-None-Match get 304 until the base changes.
func (h *Handler) getComposedConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profile, err := models.ParseProfile(chi.URLParam(r, "profile"))
	if err != nil {
		log.Err(err).Msg(app.MsgUnknownProfile)
		http.Error(w, app.MsgUnknownProfile, http.StatusBadRequest)
		return
	}

	cc, err := h.services.ComposeService.Compose(ctx, profile)
	if err != nil {
		status, msg := statusFromError(err)
		log.Err(err).Str("profile", profile.String()).Msg(msg)
		http.Error(w, msg, status)
		return
	}

	etag := utils.StrongETag(cc.Fingerprint())
	w.Header().Set("ETag", etag)
	w.Header().Set(profileHeader, profile.String())

	if utils.ETagMatches(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if _, err = utils.WriteJSON(w, cc, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write composed configuration")
	}
}
