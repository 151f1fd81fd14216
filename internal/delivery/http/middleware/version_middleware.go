package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const (
	APIVersionQuery   = "api-version"
	APIVersionHeader  = "X-Api-Version"
	DefaultAPIVersion = "1.0"

	SupportedVersionsHeader  = "api-supported-versions"
	DeprecatedVersionsHeader = "api-deprecated-versions"
)

var (
	SupportedAPIVersions  = []string{"1.0"}
	DeprecatedAPIVersions = []string{"2.0"}
)

// RequestedAPIVersion reads the version from the query string, then the header.
// A bare major version such as "2" is read as "2.0".
func RequestedAPIVersion(r *http.Request) string {
	version := r.URL.Query().Get(APIVersionQuery)
	if version == "" {
		version = r.Header.Get(APIVersionHeader)
	}
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version == "" {
		return DefaultAPIVersion
	}
	if !strings.Contains(version, ".") {
		version += ".0"
	}
	return version
}

// MatchAPIVersion restricts a route to one requested API version
func MatchAPIVersion(version string) mux.MatcherFunc {
	return func(r *http.Request, _ *mux.RouteMatch) bool {
		return RequestedAPIVersion(r) == version
	}
}

// ReportAPIVersions advertises the supported and deprecated versions on every response
func ReportAPIVersions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(SupportedVersionsHeader, strings.Join(SupportedAPIVersions, ", "))
		w.Header().Set(DeprecatedVersionsHeader, strings.Join(DeprecatedAPIVersions, ", "))
		next.ServeHTTP(w, r)
	})
}
