package role

import "github.com/DojoGymServices/gym-manager/internal/httperr"

// ===============================
// Role
// ===============================

type Role string

const (
	Members  Role = "members"
	Trainers Role = "trainers"
	Admins   Role = "admins"
)

// Parse valida o papel enviado pelo formulário de login.
func Parse(s string) (Role, error) {
	switch Role(s) {
	case Members, Trainers, Admins:
		return Role(s), nil
	}
	return "", httperr.ErrBusiness("invalid_role")
}

// IDColumn devolve a coluna de chave primária da tabela de contas do papel.
func (r Role) IDColumn() string {
	switch r {
	case Members:
		return "m_id"
	case Trainers:
		return "t_id"
	case Admins:
		return "a_id"
	}
	return ""
}

func (r Role) String() string { return string(r) }
