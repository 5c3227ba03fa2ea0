package controllers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// urlParam returns the decoded route parameter; chi hands back the escaped segment when the path had one.
func urlParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
