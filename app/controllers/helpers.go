// Package controllers holds the HTTP handlers. Controllers parse input,
// call a service, and render the result: JSON envelopes for API clients,
// flash-plus-redirect for browser form posts.
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/bind"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
	"github.com/shashiranjanraj/orderdesk/pkg/session"
)

// wantsJSON reports whether the client is an API consumer rather than a
// browser form post.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// urlParamUint parses a numeric path parameter like {id}.
func urlParamUint(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// bindInput decodes the request body into dest, JSON or form depending on
// the content type. Decode failures are reported as field errors.
func bindInput(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	var errs map[string]string
	var err error

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		errs, err = bind.JSON(r, dest)
	} else {
		errs, err = bind.Form(r, dest)
	}
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body.")
		return false
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return false
	}
	return true
}

// serviceError maps a service failure onto an HTTP response.
func serviceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationError(w, verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrProvisioning):
		response.Error(w, http.StatusInternalServerError, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("controller: unexpected error", "error", err)
		response.Error(w, http.StatusInternalServerError, "Something went wrong.")
	}
}

// redirectTo resolves a named route and issues a 302. Falls back to "/"
// when the name cannot be resolved, which would be a wiring bug.
func redirectTo(w http.ResponseWriter, r *http.Request, rt *router.Router, name string, params map[string]string) {
	url, err := rt.URL(name, params)
	if err != nil {
		logger.Error("controller: unresolvable route", "name", name, "error", err)
		url = "/"
	}
	http.Redirect(w, r, url, http.StatusFound)
}

// flashAndRedirect records a message, persists the session, and issues a
// 302 to a named route. Save must happen before the redirect writes
// headers or the cookie is lost.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, rt *router.Router, level, text, route string, params map[string]string) {
	sess := session.FromCtx(r)
	sess.Flash(level, text)
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Error("controller: session save", "error", err)
	}
	redirectTo(w, r, rt, route, params)
}
