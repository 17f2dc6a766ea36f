package repository

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
	"github.com/DojoGymServices/gym-manager/internal/domain/role"
	"github.com/DojoGymServices/gym-manager/internal/httperr"
	"github.com/DojoGymServices/gym-manager/internal/models"
)

type GymGormRepository struct {
	db *gorm.DB
}

func NewGymGormRepository(db *gorm.DB) *GymGormRepository {
	return &GymGormRepository{db: db}
}

// --------------------------------------------------
// Contas
// --------------------------------------------------

func roleTable(r role.Role) gym.Table {
	switch r {
	case role.Members:
		return gym.TableMembers
	case role.Trainers:
		return gym.TableTrainers
	default:
		return gym.TableAdmins
	}
}

func (r *GymGormRepository) VerifyUser(
	ctx context.Context,
	userRole role.Role,
	name string,
	password string,
) ([]gym.Row, error) {

	var rows []gym.Row
	if err := r.db.WithContext(ctx).
		Table(roleTable(userRole).String()).
		Where("name = ?", name).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []gym.Row{}, nil
	}

	hash, _ := rows[0]["password"].(string)
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		// senha errada não é erro, apenas nenhuma correspondência
		return []gym.Row{}, nil
	}

	delete(rows[0], "password")
	return rows, nil
}

func (r *GymGormRepository) RegisterUser(
	ctx context.Context,
	userRole role.Role,
	name string,
	passwordHash string,
) (gym.Row, error) {

	var created gym.Row

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch userRole {
		case role.Members:
			m := models.Member{Name: name, PasswordHash: passwordHash}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}

			// as linhas de apoio do membro nascem na mesma transação;
			// se uma falhar, o insert do membro é desfeito junto
			if err := tx.Create(&models.Loyalty{MemberID: m.ID}).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.Payment{MemberID: m.ID}).Error; err != nil {
				return err
			}

			created = gym.Row{"m_id": m.ID, "name": m.Name}

		case role.Trainers:
			t := models.Trainer{Name: name, PasswordHash: passwordHash}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			created = gym.Row{"t_id": t.ID, "name": t.Name}

		case role.Admins:
			a := models.Admin{Name: name, PasswordHash: passwordHash}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
			created = gym.Row{"a_id": a.ID, "name": a.Name}

		default:
			return httperr.ErrBusiness("invalid_role")
		}

		return nil
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			// nome já cadastrado → no-op
			return nil, nil
		}
		return nil, err
	}

	return created, nil
}

// --------------------------------------------------
// CRUD genérico
// --------------------------------------------------

func (r *GymGormRepository) GetAll(
	ctx context.Context,
	table gym.Table,
) ([]gym.Row, error) {

	var rows []gym.Row
	if err := r.db.WithContext(ctx).
		Table(table.String()).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return scrubPasswords(rows), nil
}

func (r *GymGormRepository) GetAllWithID(
	ctx context.Context,
	table gym.Table,
	idColumn gym.Column,
	id string,
) ([]gym.Row, error) {

	var rows []gym.Row
	if err := r.db.WithContext(ctx).
		Table(table.String()).
		Where(fmt.Sprintf("%s = ?", idColumn), id).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return scrubPasswords(rows), nil
}

func (r *GymGormRepository) GetMembersInClass(
	ctx context.Context,
	classID string,
) ([]gym.Row, error) {

	var rows []gym.Row
	if err := r.db.WithContext(ctx).
		Table("classes").
		Joins("JOIN member_classes ON classes.c_id = member_classes.c_id").
		Joins("JOIN members ON member_classes.m_id = members.m_id").
		Where("classes.c_id = ?", classID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return scrubPasswords(rows), nil
}

func (r *GymGormRepository) JoinTablesOn(
	ctx context.Context,
	tableA gym.Table,
	tableB gym.Table,
	joinColumn gym.Column,
	id string,
	selectColumn gym.Column,
) ([]gym.Row, error) {

	join := fmt.Sprintf(
		"JOIN %s ON %s.%s = %s.%s",
		tableB, tableA, joinColumn, tableB, joinColumn,
	)

	var rows []gym.Row
	if err := r.db.WithContext(ctx).
		Table(tableA.String()).
		Joins(join).
		Where(fmt.Sprintf("%s.%s = ?", tableA, selectColumn), id).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return scrubPasswords(rows), nil
}

func (r *GymGormRepository) MatchSessionsFor(
	ctx context.Context,
	idColumn gym.Column,
	id string,
) ([]gym.Row, error) {

	q := r.db.WithContext(ctx).Table("sessions")

	switch idColumn {
	case gym.ColMemberID:
		q = q.
			Joins("JOIN trainers ON sessions.t_id = trainers.t_id").
			Where("sessions.m_id = ?", id)
	case gym.ColTrainerID:
		q = q.
			Joins("JOIN members ON sessions.m_id = members.m_id").
			Where("sessions.t_id = ?", id)
	default:
		return nil, httperr.ErrBusiness("invalid_id_column")
	}

	var rows []gym.Row
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	return scrubPasswords(rows), nil
}

func (r *GymGormRepository) InsertRow(
	ctx context.Context,
	table gym.Table,
	columns []gym.Column,
	values []any,
) error {

	if len(columns) != len(values) || len(columns) == 0 {
		return httperr.ErrBusiness("column_value_mismatch")
	}

	row := map[string]any{}
	for i, col := range columns {
		row[col.String()] = values[i]
	}

	return r.db.WithContext(ctx).
		Table(table.String()).
		Create(&row).Error
}

func (r *GymGormRepository) DeleteAllWithID(
	ctx context.Context,
	table gym.Table,
	idColumn gym.Column,
	id string,
) (int64, error) {

	res := r.db.WithContext(ctx).Exec(
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, idColumn),
		id,
	)
	return res.RowsAffected, res.Error
}

func (r *GymGormRepository) ToggleBoolean(
	ctx context.Context,
	table gym.Table,
	idColumn gym.Column,
	id string,
	booleanColumn gym.Column,
) (int64, error) {

	return toggleBoolean(r.db.WithContext(ctx), table, idColumn, id, booleanColumn)
}

// NOT é involutivo: aplicar duas vezes restaura o valor original.
func toggleBoolean(
	db *gorm.DB,
	table gym.Table,
	idColumn gym.Column,
	id string,
	booleanColumn gym.Column,
) (int64, error) {

	res := db.Exec(
		fmt.Sprintf(
			"UPDATE %s SET %s = NOT %s WHERE %s = ?",
			table, booleanColumn, booleanColumn, idColumn,
		),
		id,
	)
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Operações de domínio
// --------------------------------------------------

func (r *GymGormRepository) AddLoyaltyPoints(
	ctx context.Context,
	memberID string,
	points int,
) (int64, error) {

	return addLoyaltyPoints(r.db.WithContext(ctx), memberID, points)
}

func addLoyaltyPoints(db *gorm.DB, memberID string, points int) (int64, error) {
	res := db.Exec(
		"UPDATE loyalty SET points = points + ? WHERE m_id = ?",
		points, memberID,
	)
	return res.RowsAffected, res.Error
}

// ProcessPayment compõe o toggle do pagamento e o crédito de pontos em
// uma transação.
func (r *GymGormRepository) ProcessPayment(
	ctx context.Context,
	paymentID string,
	memberID string,
	points int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := toggleBoolean(
			tx, gym.TablePayments, gym.ColPaymentID, paymentID, gym.ColProcessed,
		); err != nil {
			return err
		}

		_, err := addLoyaltyPoints(tx, memberID, points)
		return err
	})
}

func (r *GymGormRepository) UpdateEquipmentMaintenance(
	ctx context.Context,
	equipmentID string,
	nextTargetDate time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).Exec(
		"UPDATE equipment SET last_fixed = CURRENT_DATE, target_date = ? WHERE e_id = ?",
		nextTargetDate, equipmentID,
	)
	return res.RowsAffected, res.Error
}

func (r *GymGormRepository) GetEquipmentWithRoomNames(
	ctx context.Context,
) ([]gym.Row, error) {

	var rows []gym.Row
	if err := r.db.WithContext(ctx).
		Table("equipment").
		Select("equipment.e_id, equipment.e_name, equipment.target_date, equipment.last_fixed, rooms.name AS room_name").
		Joins("JOIN rooms ON equipment.r_id = rooms.r_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *GymGormRepository) DeleteBookingCascade(
	ctx context.Context,
	bookingID string,
	classID string,
) error {

	// ordem imposta pelas FKs: member_classes → classes → bookings
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM member_classes WHERE c_id = ?", classID,
		).Error; err != nil {
			return err
		}

		if err := tx.Exec(
			"DELETE FROM classes WHERE b_id = ?", bookingID,
		).Error; err != nil {
			return err
		}

		return tx.Exec(
			"DELETE FROM bookings WHERE b_id = ?", bookingID,
		).Error
	})
}

// senha nunca sai da camada de dados
func scrubPasswords(rows []gym.Row) []gym.Row {
	for _, row := range rows {
		delete(row, "password")
	}
	return rows
}

// Compile-time check
var _ gym.Repository = (*GymGormRepository)(nil)
