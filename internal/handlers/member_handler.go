package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/DojoGymServices/gym-manager/internal/domain/gym"
	"github.com/DojoGymServices/gym-manager/internal/dto"
	"github.com/DojoGymServices/gym-manager/internal/httperr"
	"github.com/DojoGymServices/gym-manager/internal/httpresp"
)

type MemberHandler struct {
	repo gym.Repository
}

func NewMemberHandler(repo gym.Repository) *MemberHandler {
	return &MemberHandler{repo: repo}
}

// ======================================================
// LIST
// ======================================================

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.repo.GetAll(c.Request.Context(), gym.TableMembers)
	if err != nil {
		log.Printf("list members: %v", err)
		httperr.Internal(c, "failed_to_list_members", "Erro ao listar membros.")
		return
	}

	httpresp.List(c, members)
}

// ======================================================
// PROFILE
// ======================================================

// Profile monta o perfil agregado do membro: oito consultas
// relacionadas em sequência.
func (h *MemberHandler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	memberID := c.Param("id")

	member, err := h.repo.GetAllWithID(ctx, gym.TableMembers, gym.ColMemberID, memberID)
	if err != nil {
		httperr.Internal(c, "profile_failed", "Erro ao carregar o perfil.")
		return
	}

	goals, err := h.repo.GetAllWithID(ctx, gym.TableGoals, gym.ColMemberID, memberID)
	if err != nil {
		httperr.Internal(c, "profile_failed", "Erro ao carregar o perfil.")
		return
	}

	exercises, err := h.repo.GetAllWithID(ctx, gym.TableExercises, gym.ColMemberID, memberID)
	if err != nil {
		httperr.Internal(c, "profile_failed", "Erro ao carregar o perfil.")
		return
	}

	sessions, err := h.repo.MatchSessionsFor(ctx, gym.ColMemberID, memberID)
	if err != nil {
		httperr.Internal(c, "profile_failed", "Erro ao carregar o perfil.")
		return
	}

	complaints, err := h.repo.GetAllWithID(ctx, gym.TableComplaints, gym.ColMemberID, memberID)
	if err != nil {
		httperr.Internal(c, "profile_failed", "Erro ao carregar o perfil.")
		return
	}

	payments, err := h.repo.GetAllWithID(ctx, gym.TablePayments, gym.ColMemberID, memberID)
	if err != nil {
		httperr.Internal(c, "profile_failed", "Erro ao carregar o perfil.")
		return
	}

	loyalty, err := h.repo.GetAllWithID(ctx, gym.TableLoyalty, gym.ColMemberID, memberID)
	if err != nil {
		httperr.Internal(c, "profile_failed", "Erro ao carregar o perfil.")
		return
	}

	health, err := h.repo.GetAllWithID(ctx, gym.TableHealth, gym.ColMemberID, memberID)
	if err != nil {
		httperr.Internal(c, "profile_failed", "Erro ao carregar o perfil.")
		return
	}

	httpresp.OK(c, dto.MemberProfileDTO{
		Member:     member,
		Goals:      goals,
		Exercises:  exercises,
		Sessions:   sessions,
		Complaints: complaints,
		Payments:   payments,
		Loyalty:    loyalty,
		Health:     health,
	})
}

// ======================================================
// GOALS
// ======================================================

type CreateGoalRequest struct {
	Goal     string `form:"goal" binding:"required"`
	MemberID string `form:"m_id" binding:"required"`
}

func (h *MemberHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.repo.InsertRow(
		c.Request.Context(),
		gym.TableGoals,
		[]gym.Column{gym.ColMemberID, gym.ColDescription},
		[]any{req.MemberID, req.Goal},
	); err != nil {
		log.Printf("insert goal: %v", err)
		httperr.Internal(c, "failed_to_create_goal", "Erro ao salvar a meta.")
		return
	}

	redirectTo(c, "/members/"+req.MemberID)
}

// ======================================================
// WORKOUTS
// ======================================================

type CreateWorkoutRequest struct {
	BodyGroup   string `form:"bodyGroup" binding:"required"`
	Description string `form:"description"`
	StartTime   string `form:"startTime"`
	EndTime     string `form:"endTime"`
	Date        string `form:"date" binding:"required"`
	MemberID    string `form:"m_id" binding:"required"`
}

func (h *MemberHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
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
		gym.TableExercises,
		[]gym.Column{
			gym.ColMemberID, gym.ColDate, gym.ColBodyGroup,
			gym.ColDescription, gym.ColStartTime, gym.ColEndTime,
		},
		[]any{req.MemberID, date, req.BodyGroup, req.Description, req.StartTime, req.EndTime},
	); err != nil {
		log.Printf("insert workout: %v", err)
		httperr.Internal(c, "failed_to_create_workout", "Erro ao salvar o treino.")
		return
	}

	redirectTo(c, "/members/"+req.MemberID)
}

// ======================================================
// SESSIONS (membro marca com treinador pelo nome)
// ======================================================

type CreateSessionRequest struct {
	TrainerName string `form:"trainerName" binding:"required"`
	StartTime   string `form:"startTime"`
	EndTime     string `form:"endTime"`
	Date        string `form:"date" binding:"required"`
	MemberID    string `form:"m_id" binding:"required"`
}

func (h *MemberHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	trainer, err := h.repo.GetAllWithID(
		c.Request.Context(), gym.TableTrainers, gym.ColName, req.TrainerName,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Erro ao agendar a sessão.")
		return
	}
	if len(trainer) == 0 {
		httperr.NotFound(c, "trainer_not_found", "Treinador não encontrado.")
		return
	}

	trainerID := gym.RowID(trainer[0], gym.ColTrainerID)

	if err := h.repo.InsertRow(
		c.Request.Context(),
		gym.TableSessions,
		[]gym.Column{
			gym.ColMemberID, gym.ColTrainerID, gym.ColDate,
			gym.ColStartTime, gym.ColEndTime,
		},
		[]any{req.MemberID, trainerID, date, req.StartTime, req.EndTime},
	); err != nil {
		log.Printf("insert session: %v", err)
		httperr.Internal(c, "failed_to_create_session", "Erro ao agendar a sessão.")
		return
	}

	redirectTo(c, "/members/"+req.MemberID)
}

// ======================================================
// HEALTH
// ======================================================

type CreateHealthRequest struct {
	Weight   float64 `form:"weight" binding:"required"`
	Height   float64 `form:"height" binding:"required"`
	Date     string  `form:"date" binding:"required"`
	MemberID string  `form:"m_id" binding:"required"`
}

func (h *MemberHandler) CreateHealth(c *gin.Context) {
	var req CreateHealthRequest
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
		gym.TableHealth,
		[]gym.Column{gym.ColMemberID, gym.ColWeight, gym.ColHeight, gym.ColDate},
		[]any{req.MemberID, req.Weight, req.Height, date},
	); err != nil {
		log.Printf("insert health: %v", err)
		httperr.Internal(c, "failed_to_create_health", "Erro ao salvar a medição.")
		return
	}

	redirectTo(c, "/members/"+req.MemberID)
}

// ======================================================
// COMPLAINTS
// ======================================================

type CreateComplaintRequest struct {
	Complaint string `form:"complaint" binding:"required"`
	MemberID  string `form:"m_id" binding:"required"`
}

func (h *MemberHandler) CreateComplaint(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.repo.InsertRow(
		c.Request.Context(),
		gym.TableComplaints,
		[]gym.Column{gym.ColMemberID, gym.ColDescription},
		[]any{req.MemberID, req.Complaint},
	); err != nil {
		log.Printf("insert complaint: %v", err)
		httperr.Internal(c, "failed_to_create_complaint", "Erro ao registrar a reclamação.")
		return
	}

	redirectBack(c)
}
