package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/domain/role"
	"github.com/DojoGymServices/gym-manager/internal/httperr"
	"github.com/DojoGymServices/gym-manager/internal/session"
	"github.com/DojoGymServices/gym-manager/internal/usecase/account"
)

type AuthHandler struct {
	login    *account.Login
	register *account.Register
	logout   *account.Logout
}

func NewAuthHandler(
	login *account.Login,
	register *account.Register,
	logout *account.Logout,
) *AuthHandler {
	return &AuthHandler{
		login:    login,
		register: register,
		logout:   logout,
	}
}

// --------- Requests ---------

type SubmitRequest struct {
	Username    string `form:"username"`
	Password    string `form:"password"`
	UserChoice  string `form:"userChoice"`
	LoginChoice string `form:"loginChoice" binding:"required"`
}

// --------- Handlers ---------

// Submit atende o formulário único de login/registro/logout.
func (h *AuthHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	switch req.LoginChoice {
	case "logout":
		h.doLogout(c)
	case "login":
		h.doLogin(c, req)
	case "register":
		h.doRegister(c, req)
	default:
		httperr.BadRequest(c, "invalid_login_choice", "Ação desconhecida.")
	}
}

func (h *AuthHandler) doLogout(c *gin.Context) {
	if id, err := c.Cookie(session.CookieName); err == nil && id != "" {
		if err := h.logout.Execute(c.Request.Context(), id); err != nil {
			httperr.Internal(c, "logout_failed", "Erro ao encerrar a sessão.")
			return
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	redirectTo(c, "/")
}

func (h *AuthHandler) doLogin(c *gin.Context, req SubmitRequest) {
	if req.Username == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_credentials", "Informe nome e senha.")
		return
	}

	userRole, err := role.Parse(req.UserChoice)
	if err != nil {
		httperr.BadRequest(c, "invalid_role", "Tipo de usuário desconhecido.")
		return
	}

	sess, err := h.login.Execute(c.Request.Context(), account.LoginInput{
		Role:     userRole,
		Name:     req.Username,
		Password: req.Password,
	})
	if err != nil {
		httperr.Internal(c, "login_failed", "Erro ao autenticar.")
		return
	}

	if sess == nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	c.SetCookie(
		session.CookieName,
		sess.ID,
		int(sess.ExpiresAt.Sub(nowFn()).Seconds()),
		"/", "", false, true,
	)

	if userRole == role.Admins {
		redirectTo(c, "/members")
		return
	}
	redirectTo(c, "/"+userRole.String()+"/"+formatID(sess.UserID))
}

func (h *AuthHandler) doRegister(c *gin.Context, req SubmitRequest) {
	if req.Username == "" || req.Password == "" {
		httperr.BadRequest(c, "missing_credentials", "Informe nome e senha.")
		return
	}

	userRole, err := role.Parse(req.UserChoice)
	if err != nil {
		httperr.BadRequest(c, "invalid_role", "Tipo de usuário desconhecido.")
		return
	}

	if _, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		Role:     userRole,
		Name:     req.Username,
		Password: req.Password,
	}); err != nil {
		httperr.Internal(c, "register_failed", "Erro ao registrar.")
		return
	}

	// nome já existente também volta para a home, como o registro
	// não autentica o usuário
	redirectTo(c, "/")
}

// --------- Home ---------

// Home devolve o resumo da sessão para a página inicial.
func (h *AuthHandler) Home(c *gin.Context) {
	sess := currentSession(c)
	if sess == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": gin.H{
			"role":    sess.Role,
			"user_id": sess.UserID,
		},
	})
}
