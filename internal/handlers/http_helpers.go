package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/middleware"
	"github.com/DojoGymServices/gym-manager/internal/session"
)

// substituível em teste
var nowFn = time.Now

func currentSession(c *gin.Context) *session.Session {
	return middleware.CurrentSession(c)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// redirectBack volta para a página de origem do formulário.
func redirectBack(c *gin.Context) {
	target := c.GetHeader("Referer")
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusSeeOther, target)
}

func redirectTo(c *gin.Context, target string) {
	c.Redirect(http.StatusSeeOther, target)
}

func parseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}
