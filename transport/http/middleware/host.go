package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"impressions/shared/constant"
)

type RouteAction int

const (
	RoutePass RouteAction = iota
	RouteRewrite
	RouteRedirect
)

func (a RouteAction) String() string {
	switch a {
	case RouteRewrite:
		return "rewrite"
	case RouteRedirect:
		return "redirect"
	default:
		return "pass"
	}
}

// HostPolicy toggles the admin host restriction. With RestrictAdmin off, /admin
// is reachable from any host.
type HostPolicy struct {
	RestrictAdmin bool
	Development   bool
}

// RouteDecision is the outcome for one request. Path is the rewritten path for
// RouteRewrite and the redirect target for RouteRedirect.
type RouteDecision struct {
	Action RouteAction
	Path   string
}

var (
	adminHostPrefixes = []string{"admin.", "admin-"}
	excludedPrefixes  = []string{"/api", "/static", "/uploads", "/swagger", "/healthz", "/metrics", "/favicon.ico"}
)

// IsAdminHost reports whether host is the admin subdomain or a hyphenated
// preview host. A port suffix is ignored.
func IsAdminHost(host string) bool {
	if hostname, _, err := net.SplitHostPort(host); err == nil {
		host = hostname
	}

	host = strings.ToLower(host)

	for _, prefix := range adminHostPrefixes {
		if strings.HasPrefix(host, prefix) {
			return true
		}
	}

	return false
}

func isExcluded(path string) bool {
	for _, prefix := range excludedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	return strings.Contains(path, ".")
}

// hasAdminPrefix is a plain string prefix test, so /administrator counts as admin.
func hasAdminPrefix(path string) bool {
	return strings.HasPrefix(path, constant.PathAdmin)
}

// ResolveRoute decides how a request is routed from its host and path alone.
func ResolveRoute(host, path string, policy HostPolicy) RouteDecision {
	if isExcluded(path) {
		return RouteDecision{Action: RoutePass, Path: path}
	}

	if IsAdminHost(host) {
		if hasAdminPrefix(path) {
			return RouteDecision{Action: RoutePass, Path: path}
		}

		if path == constant.PathHome {
			return RouteDecision{Action: RouteRewrite, Path: constant.PathAdmin}
		}

		return RouteDecision{Action: RouteRewrite, Path: constant.PathAdmin + path}
	}

	if hasAdminPrefix(path) && policy.RestrictAdmin && !policy.Development {
		return RouteDecision{Action: RouteRedirect, Path: constant.PathHome}
	}

	return RouteDecision{Action: RoutePass, Path: path}
}

// HostRouting applies ResolveRoute ahead of routing. A rewrite keeps the browser
// URL and the query string; a redirect is a 307 to the site root.
func HostRouting(policy HostPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := ResolveRoute(r.Host, r.URL.Path, policy)

			switch decision.Action {
			case RouteRewrite:
				rewritten := *r.URL
				rewritten.Path = decision.Path
				rewritten.RawPath = constant.Empty

				r = r.WithContext(r.Context())
				r.URL = &rewritten
			case RouteRedirect:
				log.Debug().Str("host", r.Host).Str("path", r.URL.Path).Msg("admin path requested outside the admin host")

				http.Redirect(w, r, decision.Path, http.StatusTemporaryRedirect)

				return
			case RoutePass:
			}

			next.ServeHTTP(w, r)
		})
	}
}
