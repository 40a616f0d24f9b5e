package web

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"

	"impressions/config"
	"impressions/shared/constant"
)

const (
	adminSessionName = "admin-session"
	siteSessionName  = "site-session"
	sessionKeyToken  = "token"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

type Flash struct {
	Type    string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// NewSessionStore builds the cookie store for the admin token and the flash
// messages. Cookies live as long as the access token.
func NewSessionStore(cfg *config.Config) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.Web.SessionKey))
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.Web.CookieSecure
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Path = constant.PathHome
	store.Options.MaxAge = cfg.JWT.AccessExpireMin * constant.MinutesToSeconds

	if cfg.Web.CookieDomain != "" {
		store.Options.Domain = cfg.Web.CookieDomain
	}

	return store
}

func (h *Handler) session(r *http.Request, name string) *sessions.Session {
	session, err := h.store.Get(r, name)
	if err != nil {
		// A cookie signed with a rotated key decodes as a fresh session.
		log.Debug().Err(err).Str("session", name).Msg("discarding unreadable session cookie")
	}

	return session
}

func (h *Handler) saveSession(w http.ResponseWriter, r *http.Request, session *sessions.Session) {
	if err := session.Save(r, w); err != nil {
		log.Error().Err(err).Str("session", session.Name()).Msg("failed to save session")
	}
}

// SessionToken returns the admin token stored in the session cookie, or "".
func (h *Handler) SessionToken(r *http.Request) string {
	token, _ := h.session(r, adminSessionName).Values[sessionKeyToken].(string)

	return token
}

func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, name, kind, message string) {
	session := h.session(r, name)
	session.AddFlash(Flash{Type: kind, Message: message})
	h.saveSession(w, r, session)
}

// flashes pops the pending messages of a session.
func (h *Handler) flashes(w http.ResponseWriter, r *http.Request, name string) []Flash {
	session := h.session(r, name)

	pending := session.Flashes()
	if len(pending) == 0 {
		return nil
	}

	messages := make([]Flash, 0, len(pending))

	for _, f := range pending {
		if flash, ok := f.(Flash); ok {
			messages = append(messages, flash)
		}
	}

	h.saveSession(w, r, session)

	return messages
}
