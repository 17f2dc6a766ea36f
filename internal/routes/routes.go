package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DojoGymServices/gym-manager/internal/audit"
	"github.com/DojoGymServices/gym-manager/internal/domain/role"
	"github.com/DojoGymServices/gym-manager/internal/handlers"
	infraRepo "github.com/DojoGymServices/gym-manager/internal/infra/repository"
	"github.com/DojoGymServices/gym-manager/internal/middleware"
	"github.com/DojoGymServices/gym-manager/internal/session"
	ucAccount "github.com/DojoGymServices/gym-manager/internal/usecase/account"
	ucBooking "github.com/DojoGymServices/gym-manager/internal/usecase/booking"
	ucPayment "github.com/DojoGymServices/gym-manager/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, sessions session.Store) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewGymGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	loginUC := ucAccount.NewLogin(repo, sessions)
	registerUC := ucAccount.NewRegister(repo, auditDispatcher)
	logoutUC := ucAccount.NewLogout(sessions)

	deleteBookingUC := ucBooking.NewDeleteBooking(repo, auditDispatcher)
	processPaymentUC := ucPayment.NewProcess(repo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, registerUC, logoutUC)
	memberHandler := handlers.NewMemberHandler(repo)
	trainerHandler := handlers.NewTrainerHandler(repo)
	roomHandler := handlers.NewRoomHandler(repo)
	classHandler := handlers.NewClassHandler(repo)
	equipmentHandler := handlers.NewEquipmentHandler(repo, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(repo, deleteBookingUC, processPaymentUC, auditDispatcher)

	// ======================================================
	// 🔐 POLÍTICAS POR ROTA
	// ======================================================
	adminOnly := middleware.RequirePolicy(role.Allow(role.Admins))
	adminOrMember := middleware.RequirePolicy(role.Allow(role.Admins, role.Members))
	adminOrTrainer := middleware.RequirePolicy(role.Allow(role.Admins, role.Trainers))
	memberSelf := middleware.RequirePolicy(role.AllowOrSelf(role.Members, role.Admins, role.Trainers))
	trainerSelf := middleware.RequirePolicy(role.AllowOrSelf(role.Trainers, role.Admins))

	// ======================================================
	// 🌍 ROTAS PÚBLICAS
	// ======================================================
	r.GET("/", authHandler.Home)
	r.POST("/submit", authHandler.Submit)
	r.GET("/equipment", equipmentHandler.List)
	r.GET("/classes", classHandler.List)

	// ======================================================
	// 🔐 ROTAS PROTEGIDAS
	// ======================================================
	r.GET("/members", adminOnly, memberHandler.List)
	r.GET("/members/:id", memberSelf, memberHandler.Profile)

	r.GET("/trainers", adminOnly, trainerHandler.List)
	r.GET("/trainers/:id", trainerSelf, trainerHandler.Detail)

	r.GET("/rooms", adminOnly, roomHandler.List)
	r.GET("/rooms/:id", adminOnly, roomHandler.Detail)

	r.GET("/classes/:id", adminOrMember, classHandler.Detail)
	r.GET("/equipment/:id", adminOnly, equipmentHandler.Detail)

	r.POST("/goals", adminOrMember, memberHandler.CreateGoal)
	r.POST("/workouts", adminOrMember, memberHandler.CreateWorkout)
	r.POST("/session", adminOrMember, memberHandler.CreateSession)
	r.POST("/health", adminOrMember, memberHandler.CreateHealth)
	r.POST("/complaint", adminOrMember, memberHandler.CreateComplaint)

	r.POST("/trainersSession", adminOrTrainer, trainerHandler.CreateSession)

	r.POST("/addEquipment", adminOnly, roomHandler.AddEquipment)
	r.POST("/delete", adminOnly, adminHandler.Delete)
	r.POST("/deleteBooking", adminOnly, adminHandler.DeleteBooking)
	r.POST("/pay", adminOnly, adminHandler.Pay)
	r.POST("/maintenance", adminOnly, equipmentHandler.Maintenance)
}
