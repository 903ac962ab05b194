package admin

import (
	"time"
)

// Session is the admin session record persisted under the
// "adminSession" key. LoginTime serializes as ISO-8601.
type Session struct {
	Email      string    `json:"email"`
	LoginTime  time.Time `json:"loginTime"`
	RememberMe bool      `json:"rememberMe"`
}
