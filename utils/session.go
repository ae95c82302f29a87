package utils

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CheckSessionStore verifies the cookie session store can round-trip a
// value. Used by the health endpoint.
func CheckSessionStore(c *gin.Context) error {
	session := sessions.Default(c)
	session.Set("probe", "ok")
	if err := session.Save(); err != nil {
		return fmt.Errorf("session store check failed: %v", err)
	}
	session.Delete("probe")
	return session.Save()
}
