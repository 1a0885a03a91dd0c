package registration

import (
	"net/http"
	"strings"
)

// downloadLink builds the absolute URL of a pass. The scheme comes from X-Forwarded-Proto when
// a proxy set it, otherwise from the connection itself.
func downloadLink(r *http.Request, publicBaseURL, filename string) string {
	path := "/pdf/" + filename
	if publicBaseURL != "" {
		return strings.TrimRight(publicBaseURL, "/") + path
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		// proxies may chain values: "https, http"
		scheme = strings.TrimSpace(strings.Split(p, ",")[0])
	}
	return scheme + "://" + r.Host + path
}
