package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
	"github.com/DojoGymServices/gym-manager/internal/dto"
	"github.com/DojoGymServices/gym-manager/internal/httperr"
	"github.com/DojoGymServices/gym-manager/internal/httpresp"
)

type RoomHandler struct {
	repo gym.Repository
}

func NewRoomHandler(repo gym.Repository) *RoomHandler {
	return &RoomHandler{repo: repo}
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.repo.GetAll(c.Request.Context(), gym.TableRooms)
	if err != nil {
		log.Printf("list rooms: %v", err)
		httperr.Internal(c, "failed_to_list_rooms", "Erro ao listar salas.")
		return
	}

	httpresp.List(c, rooms)
}

// Detail agrega a sala, seus equipamentos e as reservas com as aulas
// correspondentes.
func (h *RoomHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	roomID := c.Param("id")

	room, err := h.repo.GetAllWithID(ctx, gym.TableRooms, gym.ColRoomID, roomID)
	if err != nil {
		httperr.Internal(c, "room_detail_failed", "Erro ao carregar a sala.")
		return
	}

	equipment, err := h.repo.GetAllWithID(ctx, gym.TableEquipment, gym.ColRoomID, roomID)
	if err != nil {
		httperr.Internal(c, "room_detail_failed", "Erro ao carregar a sala.")
		return
	}

	bookings, err := h.repo.JoinTablesOn(
		ctx, gym.TableBookings, gym.TableClasses, gym.ColBookingID, roomID, gym.ColRoomID,
	)
	if err != nil {
		httperr.Internal(c, "room_detail_failed", "Erro ao carregar a sala.")
		return
	}

	httpresp.OK(c, dto.RoomDetailDTO{
		Room:      room,
		Equipment: equipment,
		Bookings:  bookings,
	})
}

// ======================================================
// EQUIPMENT
// ======================================================

type AddEquipmentRequest struct {
	EquipmentName string `form:"equipmentName" binding:"required"`
	Date          string `form:"date" binding:"required"`
	RoomID        string `form:"r_id" binding:"required"`
}

func (h *RoomHandler) AddEquipment(c *gin.Context) {
	var req AddEquipmentRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	if err := h.repo.InsertRow(
		c.Request.Context(),
		gym.TableEquipment,
		[]gym.Column{gym.ColRoomID, gym.ColEquipmentName, gym.ColTargetDate},
		[]any{req.RoomID, req.EquipmentName, date},
	); err != nil {
		log.Printf("insert equipment: %v", err)
		httperr.Internal(c, "failed_to_add_equipment", "Erro ao cadastrar o equipamento.")
		return
	}

	redirectTo(c, "/rooms/"+req.RoomID)
}
