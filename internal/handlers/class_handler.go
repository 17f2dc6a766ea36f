package handlers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
	"github.com/DojoGymServices/gym-manager/internal/dto"
	"github.com/DojoGymServices/gym-manager/internal/httperr"
	"github.com/DojoGymServices/gym-manager/internal/httpresp"
)

type ClassHandler struct {
	repo gym.Repository
}

func NewClassHandler(repo gym.Repository) *ClassHandler {
	return &ClassHandler{repo: repo}
}

func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.repo.GetAll(c.Request.Context(), gym.TableClasses)
	if err != nil {
		log.Printf("list classes: %v", err)
		httperr.Internal(c, "failed_to_list_classes", "Erro ao listar aulas.")
		return
	}

	httpresp.List(c, classes)
}

// Detail resolve aula → reserva → sala e lista os membros inscritos.
// Aula ou reserva ausente é 404.
func (h *ClassHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	classID := c.Param("id")

	class, err := h.repo.GetAllWithID(ctx, gym.TableClasses, gym.ColClassID, classID)
	if err != nil {
		httperr.Internal(c, "class_detail_failed", "Erro ao carregar a aula.")
		return
	}
	if len(class) == 0 {
		httperr.NotFound(c, "class_not_found", "Aula não encontrada.")
		return
	}

	bookingID := gym.RowID(class[0], gym.ColBookingID)

	booking, err := h.repo.GetAllWithID(
		ctx, gym.TableBookings, gym.ColBookingID,
		strconv.FormatUint(uint64(bookingID), 10),
	)
	if err != nil {
		httperr.Internal(c, "class_detail_failed", "Erro ao carregar a aula.")
		return
	}
	if len(booking) == 0 {
		httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
		return
	}

	roomID := gym.RowID(booking[0], gym.ColRoomID)

	room, err := h.repo.GetAllWithID(
		ctx, gym.TableRooms, gym.ColRoomID,
		strconv.FormatUint(uint64(roomID), 10),
	)
	if err != nil {
		httperr.Internal(c, "class_detail_failed", "Erro ao carregar a aula.")
		return
	}

	members, err := h.repo.GetMembersInClass(ctx, classID)
	if err != nil {
		httperr.Internal(c, "class_detail_failed", "Erro ao carregar a aula.")
		return
	}

	httpresp.OK(c, dto.ClassDetailDTO{
		Class:   class,
		Booking: booking,
		Room:    room,
		Members: members,
	})
}
