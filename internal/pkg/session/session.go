package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var sessionStore *session.Store

// NewSessionStore initializes the cookie session store. Storage stays on the
// middleware's in-memory default: list state is transient per browser session
// and is rebuilt from the backend on every screen mount, so nothing here
// needs to survive a restart.
func NewSessionStore() *session.Store {
	sessionStore = session.New(session.Config{
		CookieHTTPOnly: true,
		// CookieSecure:   true, // Enable in production with HTTPS
		Expiration: time.Hour * 1,
		KeyLookup:  "cookie:session_id",
	})

	return sessionStore
}

func GetSessionStore() *session.Store {
	return sessionStore
}

// SetJSON stores a JSON-encoded value under key in the user's session. List
// screens use this for their cached collection and pipeline state.
func SetJSON(c *fiber.Ctx, key string, value any) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %v", err)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode session value %q: %v", key, err)
	}

	sess.Set(key, string(encoded))
	return sess.Save()
}

// GetJSON decodes the value stored under key into out. Returns false when the
// key is absent or the stored value cannot be decoded.
func GetJSON(c *fiber.Ctx, key string, out any) bool {
	if sessionStore == nil {
		return false
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return false
	}

	value := sess.Get(key)
	if value == nil {
		return false
	}

	encoded, ok := value.(string)
	if !ok {
		return false
	}

	return json.Unmarshal([]byte(encoded), out) == nil
}

// Delete removes a key from the user's session.
func Delete(c *fiber.Ctx, key string) {
	if sessionStore == nil {
		return
	}
	sess, err := sessionStore.Get(c)
	if err != nil {
		return
	}
	sess.Delete(key)
	_ = sess.Save()
}
