package attendance

import (
	"net/http"
	"time"

	"gym-app/database"
	"gym-app/internal/app/http/middleware"
	"gym-app/internal/domain/attendance"
	"gym-app/internal/domain/members"

	"github.com/gin-gonic/gin"
)

// CheckInMember records a visit for a member of the caller's gym.
func CheckInMember(c *gin.Context) {
	var input struct {
		MemberID uint `json:"member_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	var member members.Member
	if err := database.DB.Where("id = ? AND gym_id = ?", input.MemberID, gymID).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	now := time.Now()
	if member.ExpiresAt != nil && now.After(*member.ExpiresAt) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Membership expired"})
		return
	}

	checkIn := attendance.CheckIn{
		GymID:       gymID,
		MemberID:    member.ID,
		CheckedInAt: now,
	}
	if err := database.DB.Create(&checkIn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record check-in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"check_in": checkIn})
}

func ListCheckIns(c *gin.Context) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	q := database.DB.Where("gym_id = ?", gymID)
	if memberID := c.Query("member_id"); memberID != "" {
		q = q.Where("member_id = ?", memberID)
	}

	var list []attendance.CheckIn
	if err := q.Order("checked_in_at desc").Limit(200).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load check-ins"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"check_ins": list})
}
