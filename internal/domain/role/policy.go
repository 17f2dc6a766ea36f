package role

import "strconv"

// ===============================
// Policy
// ===============================

// Policy descreve quem pode acessar uma rota: um conjunto de papéis
// sempre aceitos e, opcionalmente, um papel aceito apenas quando o id
// da sessão coincide com o recurso pedido ("role-or-self").
type Policy struct {
	Roles []Role
	Self  Role
}

func Allow(roles ...Role) Policy {
	return Policy{Roles: roles}
}

func AllowOrSelf(self Role, roles ...Role) Policy {
	return Policy{Roles: roles, Self: self}
}

// Allows é o único avaliador de autorização do sistema. resourceID é o
// parâmetro de caminho da rota (vazio em rotas sem recurso próprio).
func (p Policy) Allows(r Role, userID uint, resourceID string) bool {
	for _, allowed := range p.Roles {
		if r == allowed {
			return true
		}
	}

	if p.Self != "" && r == p.Self && resourceID != "" {
		return strconv.FormatUint(uint64(userID), 10) == resourceID
	}

	return false
}
