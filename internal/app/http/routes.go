package routes

import (
	adminapi "gym-app/internal/api/admin"
	attendanceapi "gym-app/internal/api/attendance"
	authapi "gym-app/internal/api/auth"
	membersapi "gym-app/internal/api/members"
	packagesapi "gym-app/internal/api/packages"
	plansapi "gym-app/internal/api/plans"
	salariesapi "gym-app/internal/api/salaries"
	trainersapi "gym-app/internal/api/trainers"
	"gym-app/internal/api/users"
	"gym-app/internal/app/http/middleware"
	"gym-app/internal/domain/access"
	"gym-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plansapi.ListPlans)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SubjectMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/plans/upgrade", plansapi.UpgradeSuggestionHandler)
	auth.POST("/change-password", authapi.ChangePassword)

	// Gym operations: owners manage everything, trainers work with the
	// members assigned to them. Feature guards reflect the gym's plan;
	// for non-owner roles they always pass.
	gym := auth.Group("/")
	gym.Use(middleware.RequireRole(
		string(access.RoleGymOwner),
		string(access.RoleTrainer),
	))

	gym.GET("/members", membersapi.ListMembers)
	gym.POST("/members", membersapi.CreateMember)
	gym.GET("/members/:id", membersapi.GetMember)
	gym.DELETE("/members/:id", membersapi.DeleteMember)

	bmi := gym.Group("/")
	bmi.Use(middleware.RequireFeature(plans.FeatureMemberBMI))
	bmi.POST("/members/:id/bmi", membersapi.AddBMIRecord)
	bmi.GET("/members/:id/bmi", membersapi.ListBMIRecords)

	diet := gym.Group("/")
	diet.Use(middleware.RequireFeature(plans.FeatureDietPlans))
	diet.POST("/members/:id/diet-plans", membersapi.AddDietPlan)
	diet.GET("/members/:id/diet-plans", membersapi.ListDietPlans)

	checkins := gym.Group("/")
	checkins.Use(middleware.RequireFeature(plans.FeatureAttendanceTracking))
	checkins.POST("/check-ins", attendanceapi.CheckInMember)
	checkins.GET("/check-ins", attendanceapi.ListCheckIns)

	// Owner-only management
	owner := auth.Group("/")
	owner.Use(middleware.RequireRole(string(access.RoleGymOwner)))

	owner.GET("/trainers", trainersapi.ListTrainers)
	owner.POST("/trainers", trainersapi.CreateTrainer)
	owner.PUT("/trainers/:id", trainersapi.UpdateTrainer)
	owner.DELETE("/trainers/:id", trainersapi.DeleteTrainer)

	owner.GET("/packages", packagesapi.ListPackages)
	owner.POST("/packages", packagesapi.CreatePackage)
	owner.PUT("/packages/:id", packagesapi.UpdatePackage)
	owner.DELETE("/packages/:id", packagesapi.DeletePackage)

	salary := owner.Group("/")
	salary.Use(middleware.RequireFeature(plans.FeatureSalarySettlement))
	salary.POST("/salaries/settle", salariesapi.SettleSalary)
	salary.GET("/salaries", salariesapi.ListSettlements)

	// Revenue reporting needs either plan-level reporting or the salary
	// module; granting one of the two is enough to show the page.
	reports := owner.Group("/")
	reports.Use(middleware.RequireAnyFeature([]plans.FeatureCode{
		plans.FeatureRevenueReports,
		plans.FeatureSalarySettlement,
	}))
	reports.GET("/reports/salaries", salariesapi.ListSettlements)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(string(access.RoleAdmin)))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/gyms", adminapi.ListAllGyms)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.PUT("/gyms/:id/subscription", adminapi.SetGymSubscription)
}
