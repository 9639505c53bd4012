package admin

import (
	"net/http"

	"gym-app/database"
	"gym-app/internal/domain/access"
	"gym-app/internal/domain/gyms"
	"gym-app/internal/domain/members"
	"gym-app/internal/domain/trainers"
	"gym-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminGym struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	OwnerEmail       string `json:"owner_email"`
	SubscriptionName string `json:"subscription_name"`
	Plan             string `json:"plan"`
	TrainerCount     int64  `json:"trainer_count"`
	MemberCount      int64  `json:"member_count"`
}

type AdminStats struct {
	TotalGyms    int64            `json:"total_gyms"`
	TotalUsers   int64            `json:"total_users"`
	TotalMembers int64            `json:"total_members"`
	GymsPerPlan  map[string]int64 `json:"gyms_per_plan"`
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats
	database.DB.Model(&gyms.Gym{}).Count(&stats.TotalGyms)
	database.DB.Model(&users.User{}).Count(&stats.TotalUsers)
	database.DB.Model(&members.Member{}).Count(&stats.TotalMembers)

	stats.GymsPerPlan = map[string]int64{}
	var all []gyms.Gym
	if err := database.DB.Find(&all).Error; err == nil {
		for _, g := range all {
			plan := access.ResolvePlan(g.SubscriptionName)
			stats.GymsPerPlan[string(plan)]++
		}
	}

	c.JSON(http.StatusOK, stats)
}

func ListAllGyms(c *gin.Context) {
	var all []gyms.Gym
	if err := database.DB.Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gyms"})
		return
	}

	out := make([]AdminGym, 0, len(all))
	for _, g := range all {
		var owner users.User
		ownerEmail := ""
		if err := database.DB.First(&owner, g.OwnerID).Error; err == nil {
			ownerEmail = owner.Email
		}

		var trainerCount, memberCount int64
		database.DB.Model(&trainers.Trainer{}).Where("gym_id = ?", g.ID).Count(&trainerCount)
		database.DB.Model(&members.Member{}).Where("gym_id = ?", g.ID).Count(&memberCount)

		out = append(out, AdminGym{
			ID:               g.ID,
			Name:             g.Name,
			OwnerEmail:       ownerEmail,
			SubscriptionName: g.SubscriptionName,
			Plan:             string(access.ResolvePlan(g.SubscriptionName)),
			TrainerCount:     trainerCount,
			MemberCount:      memberCount,
		})
	}

	c.JSON(http.StatusOK, gin.H{"gyms": out})
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	type adminUser struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
		GymID *uint  `json:"gym_id,omitempty"`
	}

	out := make([]adminUser, 0, len(all))
	for _, u := range all {
		out = append(out, adminUser{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
			GymID: u.GymID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// SetGymSubscription lets an operator write the subscription name the
// billing side would normally set. Free text on purpose: the resolver
// downgrades anything unrecognized to the lowest plan.
func SetGymSubscription(c *gin.Context) {
	var input struct {
		SubscriptionName string `json:"subscription_name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var gym gyms.Gym
	if err := database.DB.First(&gym, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gym not found"})
		return
	}

	if err := database.DB.Model(&gym).Update("subscription_name", input.SubscriptionName).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gym":           gym.ID,
		"subscription":  input.SubscriptionName,
		"resolved_plan": string(access.ResolvePlan(input.SubscriptionName)),
	})
}
