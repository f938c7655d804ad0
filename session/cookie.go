package session

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	cookieName   = "admindash"
	cookieMaxAge = 30 * 24 * 60 * 60
)

// NewCookieStore returns the signed cookie store backing browser sessions.
// Without a secret a random key is generated, so sessions do not survive a
// restart.
func NewCookieStore(secret string) *sessions.CookieStore {
	key := []byte(secret)
	if len(key) == 0 {
		zap.S().Warn("SESSION_SECRET not set, generating an ephemeral key")
		key = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// CookieStorage is a Storage bound to one request/response pair. Writes are
// saved immediately, so they must happen before the response body.
type CookieStorage struct {
	store sessions.Store
	r     *http.Request
	w     http.ResponseWriter
}

func NewCookieStorage(store sessions.Store, w http.ResponseWriter, r *http.Request) *CookieStorage {
	return &CookieStorage{store: store, r: r, w: w}
}

func (c *CookieStorage) session() (*sessions.Session, error) {
	sess, err := c.store.Get(c.r, cookieName)
	if err != nil {
		// a cookie signed with an old key still yields a fresh session
		zap.S().Debugw("discarding unreadable session cookie", "error", err)
	}
	if sess == nil {
		return nil, errors.Errorf("loading session cookie: %v", err)
	}
	return sess, nil
}

func (c *CookieStorage) Get(key string) (string, bool, error) {
	sess, err := c.session()
	if err != nil {
		return "", false, err
	}
	v, ok := sess.Values[key].(string)
	return v, ok, nil
}

func (c *CookieStorage) Set(key, value string) error {
	sess, err := c.session()
	if err != nil {
		return err
	}
	sess.Values[key] = value
	return errors.Wrap(sess.Save(c.r, c.w), "saving session cookie")
}

func (c *CookieStorage) Delete(key string) error {
	sess, err := c.session()
	if err != nil {
		return err
	}
	if _, ok := sess.Values[key]; !ok {
		return nil
	}
	delete(sess.Values, key)
	return errors.Wrap(sess.Save(c.r, c.w), "saving session cookie")
}

// AddFlash queues a one-shot message for the next rendered page.
func (c *CookieStorage) AddFlash(message string) error {
	sess, err := c.session()
	if err != nil {
		return err
	}
	sess.AddFlash(message)
	return errors.Wrap(sess.Save(c.r, c.w), "saving session cookie")
}

// Flashes pops every queued message.
func (c *CookieStorage) Flashes() []string {
	sess, err := c.session()
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(c.r, c.w); err != nil {
		zap.S().Warnw("saving session cookie failed", "error", err)
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
