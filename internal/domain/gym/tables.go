package gym

import "github.com/DojoGymServices/gym-manager/internal/httperr"

// ======================================================
// Identificadores permitidos
// ======================================================
//
// Nomes de tabela e coluna nunca vêm do request: os handlers só
// trabalham com estes valores enumerados, e os endpoints genéricos
// (/delete) passam pelo Parse correspondente antes de tocar no banco.

type Table string

const (
	TableMembers       Table = "members"
	TableTrainers      Table = "trainers"
	TableAdmins        Table = "admins"
	TableRooms         Table = "rooms"
	TableEquipment     Table = "equipment"
	TableBookings      Table = "bookings"
	TableClasses       Table = "classes"
	TableMemberClasses Table = "member_classes"
	TableSessions      Table = "sessions"
	TableGoals         Table = "goals"
	TableExercises     Table = "exercises"
	TableHealth        Table = "health"
	TableComplaints    Table = "complaints"
	TablePayments      Table = "payments"
	TableLoyalty       Table = "loyalty"
)

var knownTables = map[Table]bool{
	TableMembers:       true,
	TableTrainers:      true,
	TableAdmins:        true,
	TableRooms:         true,
	TableEquipment:     true,
	TableBookings:      true,
	TableClasses:       true,
	TableMemberClasses: true,
	TableSessions:      true,
	TableGoals:         true,
	TableExercises:     true,
	TableHealth:        true,
	TableComplaints:    true,
	TablePayments:      true,
	TableLoyalty:       true,
}

func ParseTable(s string) (Table, error) {
	t := Table(s)
	if !knownTables[t] {
		return "", httperr.ErrBusiness("unknown_table")
	}
	return t, nil
}

func (t Table) String() string { return string(t) }

type Column string

const (
	ColMemberID    Column = "m_id"
	ColTrainerID   Column = "t_id"
	ColAdminID     Column = "a_id"
	ColRoomID      Column = "r_id"
	ColEquipmentID Column = "e_id"
	ColBookingID   Column = "b_id"
	ColClassID     Column = "c_id"
	ColPaymentID   Column = "p_id"
	ColID          Column = "id"
	ColName        Column = "name"
	ColProcessed   Column = "processed"

	ColDescription   Column = "description"
	ColDate          Column = "date"
	ColBodyGroup     Column = "body_group"
	ColStartTime     Column = "start_time"
	ColEndTime       Column = "end_time"
	ColWeight        Column = "weight"
	ColHeight        Column = "height"
	ColEquipmentName Column = "e_name"
	ColTargetDate    Column = "target_date"
)

var knownColumns = map[Column]bool{
	ColMemberID:    true,
	ColTrainerID:   true,
	ColAdminID:     true,
	ColRoomID:      true,
	ColEquipmentID: true,
	ColBookingID:   true,
	ColClassID:     true,
	ColPaymentID:   true,
	ColID:          true,
	ColName:        true,
	ColProcessed:   true,

	ColDescription:   true,
	ColDate:          true,
	ColBodyGroup:     true,
	ColStartTime:     true,
	ColEndTime:       true,
	ColWeight:        true,
	ColHeight:        true,
	ColEquipmentName: true,
	ColTargetDate:    true,
}

func ParseColumn(s string) (Column, error) {
	c := Column(s)
	if !knownColumns[c] {
		return "", httperr.ErrBusiness("unknown_column")
	}
	return c, nil
}

func (c Column) String() string { return string(c) }
