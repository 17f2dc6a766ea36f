package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
	"github.com/DojoGymServices/gym-manager/internal/dto"
	"github.com/DojoGymServices/gym-manager/internal/httperr"
	"github.com/DojoGymServices/gym-manager/internal/httpresp"
)

type TrainerHandler struct {
	repo gym.Repository
}

func NewTrainerHandler(repo gym.Repository) *TrainerHandler {
	return &TrainerHandler{repo: repo}
}

func (h *TrainerHandler) List(c *gin.Context) {
	trainers, err := h.repo.GetAll(c.Request.Context(), gym.TableTrainers)
	if err != nil {
		log.Printf("list trainers: %v", err)
		httperr.Internal(c, "failed_to_list_trainers", "Erro ao listar treinadores.")
		return
	}

	httpresp.List(c, trainers)
}

func (h *TrainerHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	trainerID := c.Param("id")

	trainer, err := h.repo.GetAllWithID(ctx, gym.TableTrainers, gym.ColTrainerID, trainerID)
	if err != nil {
		httperr.Internal(c, "trainer_detail_failed", "Erro ao carregar o treinador.")
		return
	}

	sessions, err := h.repo.MatchSessionsFor(ctx, gym.ColTrainerID, trainerID)
	if err != nil {
		httperr.Internal(c, "trainer_detail_failed", "Erro ao carregar o treinador.")
		return
	}

	httpresp.OK(c, dto.TrainerDetailDTO{
		Trainer:  trainer,
		Sessions: sessions,
	})
}

// ======================================================
// SESSIONS (treinador marca com membro pelo nome)
// ======================================================

type CreateTrainerSessionRequest struct {
	MemberName string `form:"memberName" binding:"required"`
	StartTime  string `form:"startTime"`
	EndTime    string `form:"endTime"`
	Date       string `form:"date" binding:"required"`
	TrainerID  string `form:"t_id" binding:"required"`
}

func (h *TrainerHandler) CreateSession(c *gin.Context) {
	var req CreateTrainerSessionRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	member, err := h.repo.GetAllWithID(
		c.Request.Context(), gym.TableMembers, gym.ColName, req.MemberName,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Erro ao agendar a sessão.")
		return
	}
	if len(member) == 0 {
		httperr.NotFound(c, "member_not_found", "Membro não encontrado.")
		return
	}

	memberID := gym.RowID(member[0], gym.ColMemberID)

	if err := h.repo.InsertRow(
		c.Request.Context(),
		gym.TableSessions,
		[]gym.Column{
			gym.ColMemberID, gym.ColTrainerID, gym.ColDate,
			gym.ColStartTime, gym.ColEndTime,
		},
		[]any{memberID, req.TrainerID, date, req.StartTime, req.EndTime},
	); err != nil {
		log.Printf("insert trainer session: %v", err)
		httperr.Internal(c, "failed_to_create_session", "Erro ao agendar a sessão.")
		return
	}

	redirectTo(c, "/trainers/"+req.TrainerID)
}
