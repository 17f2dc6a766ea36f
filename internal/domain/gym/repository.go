package gym

import (
	"context"
	"time"

	"github.com/DojoGymServices/gym-manager/internal/domain/role"
)

// Row é o formato genérico devolvido pelas consultas parametrizadas
// por tabela. As chaves são os nomes das colunas no banco.
type Row = map[string]any

type Repository interface {
	// -------- Contas --------

	// VerifyUser busca a conta pelo nome e compara a senha com o hash
	// armazenado. Sem correspondência devolve fatia vazia, nunca erro.
	// A linha devolvida não contém a coluna password.
	VerifyUser(ctx context.Context, r role.Role, name, password string) ([]Row, error)

	// RegisterUser insere a conta; nome já existente é no-op e devolve
	// nil. Para membros também cria, na mesma transação, a linha de
	// Loyalty (points=0) e uma linha de Payments.
	RegisterUser(ctx context.Context, r role.Role, name, passwordHash string) (Row, error)

	// -------- CRUD genérico --------

	GetAll(ctx context.Context, table Table) ([]Row, error)

	GetAllWithID(ctx context.Context, table Table, idColumn Column, id string) ([]Row, error)

	GetMembersInClass(ctx context.Context, classID string) ([]Row, error)

	JoinTablesOn(ctx context.Context, tableA, tableB Table, joinColumn Column, id string, selectColumn Column) ([]Row, error)

	// MatchSessionsFor aceita apenas m_id ou t_id; qualquer outra
	// coluna falha com invalid_id_column.
	MatchSessionsFor(ctx context.Context, idColumn Column, id string) ([]Row, error)

	InsertRow(ctx context.Context, table Table, columns []Column, values []any) error

	DeleteAllWithID(ctx context.Context, table Table, idColumn Column, id string) (int64, error)

	ToggleBoolean(ctx context.Context, table Table, idColumn Column, id string, booleanColumn Column) (int64, error)

	// -------- Operações de domínio --------

	AddLoyaltyPoints(ctx context.Context, memberID string, points int) (int64, error)

	// ProcessPayment alterna o processed do pagamento e credita os
	// pontos na mesma transação.
	ProcessPayment(ctx context.Context, paymentID, memberID string, points int) error

	UpdateEquipmentMaintenance(ctx context.Context, equipmentID string, nextTargetDate time.Time) (int64, error)

	GetEquipmentWithRoomNames(ctx context.Context) ([]Row, error)

	// DeleteBookingCascade apaga member_classes, classes e a reserva,
	// nessa ordem, em uma transação.
	DeleteBookingCascade(ctx context.Context, bookingID, classID string) error
}
