package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/audit"
	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
	"github.com/DojoGymServices/gym-manager/internal/httperr"
	"github.com/DojoGymServices/gym-manager/internal/usecase/booking"
	"github.com/DojoGymServices/gym-manager/internal/usecase/payment"
)

// AdminHandler concentra as operações administrativas genéricas:
// remoção por tabela, remoção em cascata de reservas e pagamentos.
type AdminHandler struct {
	repo          gym.Repository
	deleteBooking *booking.DeleteBooking
	processPay    *payment.Process
	audit         *audit.Dispatcher
}

func NewAdminHandler(
	repo gym.Repository,
	deleteBooking *booking.DeleteBooking,
	processPay *payment.Process,
	audit *audit.Dispatcher,
) *AdminHandler {
	return &AdminHandler{
		repo:          repo,
		deleteBooking: deleteBooking,
		processPay:    processPay,
		audit:         audit,
	}
}

// ======================================================
// DELETE GENÉRICO
// ======================================================

type DeleteRequest struct {
	Table  string `form:"table" binding:"required"`
	IDType string `form:"idType" binding:"required"`
	ID     string `form:"id" binding:"required"`
}

// Delete remove linhas de qualquer tabela permitida. Os identificadores
// passam pelo allow-list antes de chegar ao banco.
func (h *AdminHandler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	table, err := gym.ParseTable(req.Table)
	if err != nil {
		httperr.BadRequest(c, "unknown_table", "Tabela desconhecida.")
		return
	}

	idColumn, err := gym.ParseColumn(req.IDType)
	if err != nil {
		httperr.BadRequest(c, "unknown_column", "Coluna desconhecida.")
		return
	}

	if _, err := h.repo.DeleteAllWithID(
		c.Request.Context(), table, idColumn, req.ID,
	); err != nil {
		log.Printf("delete rows: %v", err)
		httperr.Internal(c, "delete_failed", "Erro ao remover.")
		return
	}

	if sess := currentSession(c); sess != nil {
		actorID := sess.UserID
		h.audit.Dispatch(audit.Event{
			ActorRole: sess.Role.String(),
			ActorID:   &actorID,
			Action:    "row_deleted",
			Entity:    table.String(),
			Metadata:  map[string]any{"id_column": idColumn.String(), "id": req.ID},
		})
	}

	redirectBack(c)
}

// ======================================================
// DELETE BOOKING (cascata)
// ======================================================

type DeleteBookingRequest struct {
	BookingID string `form:"b_id" binding:"required"`
	ClassID   string `form:"c_id" binding:"required"`
}

func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	var req DeleteBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var actorRole string
	var actorID uint
	if sess := currentSession(c); sess != nil {
		actorRole = sess.Role.String()
		actorID = sess.UserID
	}

	if err := h.deleteBooking.Execute(
		c.Request.Context(),
		actorRole, actorID,
		req.BookingID, req.ClassID,
	); err != nil {
		log.Printf("delete booking: %v", err)
		httperr.Internal(c, "delete_booking_failed", "Erro ao remover a reserva.")
		return
	}

	redirectBack(c)
}

// ======================================================
// PAY
// ======================================================

type PayRequest struct {
	PaymentID string `form:"id" binding:"required"`
	MemberID  string `form:"m_id" binding:"required"`

	// sem binding required: custo zero é um pagamento válido
	Cost int `form:"cost"`
}

func (h *AdminHandler) Pay(c *gin.Context) {
	var req PayRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var actorRole string
	var actorID uint
	if sess := currentSession(c); sess != nil {
		actorRole = sess.Role.String()
		actorID = sess.UserID
	}

	if err := h.processPay.Execute(
		c.Request.Context(),
		actorRole, actorID,
		req.PaymentID, req.MemberID, req.Cost,
	); err != nil {
		log.Printf("process payment: %v", err)
		httperr.Internal(c, "payment_failed", "Erro ao processar o pagamento.")
		return
	}

	redirectBack(c)
}
