package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/session"
)

const ContextSession = "session"

// SessionMiddleware resolve o cookie de sessão e anexa o valor ao
// contexto. Nunca rejeita: request sem sessão segue como anônimo.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(session.CookieName)
		if err != nil {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			log.Printf("session lookup failed: %v", err)
			c.Next()
			return
		}

		if sess != nil {
			c.Set(ContextSession, sess)
		}

		c.Next()
	}
}

// CurrentSession devolve nil para requests anônimos.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
