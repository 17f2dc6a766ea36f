package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/domain/role"
	"github.com/DojoGymServices/gym-manager/internal/httperr"
)

// RequirePolicy barra o request antes de qualquer acesso a dados
// quando a sessão não satisfaz a política da rota.
func RequirePolicy(p role.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			httperr.Forbidden(c, "forbidden", "Acesso negado.")
			c.Abort()
			return
		}

		if !p.Allows(sess.Role, sess.UserID, c.Param("id")) {
			httperr.Forbidden(c, "forbidden", "Acesso negado.")
			c.Abort()
			return
		}

		c.Next()
	}
}
