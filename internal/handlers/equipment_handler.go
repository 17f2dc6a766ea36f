package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/audit"
	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
	"github.com/DojoGymServices/gym-manager/internal/httperr"
	"github.com/DojoGymServices/gym-manager/internal/httpresp"
)

type EquipmentHandler struct {
	repo  gym.Repository
	audit *audit.Dispatcher
}

func NewEquipmentHandler(repo gym.Repository, audit *audit.Dispatcher) *EquipmentHandler {
	return &EquipmentHandler{repo: repo, audit: audit}
}

// List devolve todos os equipamentos com o nome da sala de cada um.
func (h *EquipmentHandler) List(c *gin.Context) {
	equipment, err := h.repo.GetEquipmentWithRoomNames(c.Request.Context())
	if err != nil {
		log.Printf("list equipment: %v", err)
		httperr.Internal(c, "failed_to_list_equipment", "Erro ao listar equipamentos.")
		return
	}

	httpresp.List(c, equipment)
}

func (h *EquipmentHandler) Detail(c *gin.Context) {
	equipment, err := h.repo.GetAllWithID(
		c.Request.Context(), gym.TableEquipment, gym.ColEquipmentID, c.Param("id"),
	)
	if err != nil {
		httperr.Internal(c, "equipment_detail_failed", "Erro ao carregar o equipamento.")
		return
	}

	httpresp.OK(c, equipment)
}

// ======================================================
// MAINTENANCE
// ======================================================

type MaintenanceRequest struct {
	EquipmentID string `form:"id" binding:"required"`
	Date        string `form:"date" binding:"required"`
}

// Maintenance registra a manutenção de hoje e agenda a próxima.
func (h *EquipmentHandler) Maintenance(c *gin.Context) {
	var req MaintenanceRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "missing_date", "Informe equipamento e data.")
		return
	}

	target, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	if _, err := h.repo.UpdateEquipmentMaintenance(
		c.Request.Context(), req.EquipmentID, target,
	); err != nil {
		log.Printf("update maintenance: %v", err)
		httperr.Internal(c, "maintenance_failed", "Erro ao registrar a manutenção.")
		return
	}

	if sess := currentSession(c); sess != nil {
		actorID := sess.UserID
		h.audit.Dispatch(audit.Event{
			ActorRole: sess.Role.String(),
			ActorID:   &actorID,
			Action:    "equipment_maintained",
			Entity:    "equipment",
			Metadata:  map[string]any{"e_id": req.EquipmentID, "target_date": req.Date},
		})
	}

	redirectBack(c)
}
