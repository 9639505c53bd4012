package users

import (
	"net/http"

	"gym-app/database"
	"gym-app/internal/app/http/middleware"
	"gym-app/internal/domain/access"
	"gym-app/internal/domain/gyms"
	"gym-app/internal/domain/packages"
	"gym-app/internal/domain/trainers"
	"gym-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	sub, ok := middleware.SubjectFrom(c)
	if !ok {
		sub = access.Subject{Role: access.Role(user.Role)}
	}

	var gym *gyms.Gym
	trainerCount := 0
	packageCount := 0
	if gymID, ok := middleware.GymIDFrom(c); ok {
		var g gyms.Gym
		if err := database.DB.First(&g, gymID).Error; err == nil {
			gym = &g
		}

		var tc, pc int64
		database.DB.Model(&trainers.Trainer{}).Where("gym_id = ? AND active = ?", gymID, true).Count(&tc)
		database.DB.Model(&packages.Package{}).Where("gym_id = ? AND active = ?", gymID, true).Count(&pc)
		trainerCount = int(tc)
		packageCount = int(pc)
	}

	resp := MeResponse{
		User: UserDTO{
			ID:       user.ID,
			Email:    user.Email,
			Name:     user.Name,
			Lastname: user.Lastname,
			Tel:      stringPtrIfNotEmpty(user.Tel),
			Role:     user.Role,
		},
		Gym:    BuildGymDTO(gym),
		Access: BuildAccessDTO(sub, trainerCount, packageCount),
	}

	c.JSON(http.StatusOK, resp)
}

func stringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
