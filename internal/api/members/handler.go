package members

import (
	"net/http"
	"time"

	"gym-app/database"
	"gym-app/internal/app/http/middleware"
	"gym-app/internal/domain/members"
	"gym-app/internal/domain/packages"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ListMembers(c *gin.Context) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	var list []members.Member
	if err := database.DB.Where("gym_id = ?", gymID).Order("id").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": list})
}

func CreateMember(c *gin.Context) {
	var input struct {
		Name      string  `json:"name" binding:"required"`
		Lastname  string  `json:"lastname"`
		Tel       string  `json:"tel"`
		Email     *string `json:"email"`
		PackageID *uint   `json:"package_id"`
		TrainerID *uint   `json:"trainer_id"`
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

	now := time.Now()
	member := members.Member{
		Code:      uuid.New(),
		GymID:     gymID,
		Name:      input.Name,
		Lastname:  input.Lastname,
		Tel:       input.Tel,
		Email:     input.Email,
		TrainerID: input.TrainerID,
		JoinedAt:  now,
	}

	// Membership expiry follows the package duration when one is set.
	if input.PackageID != nil {
		var pkg packages.Package
		if err := database.DB.Where("id = ? AND gym_id = ?", *input.PackageID, gymID).First(&pkg).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown package for this gym"})
			return
		}
		member.PackageID = input.PackageID
		expiry := now.AddDate(0, 0, pkg.DurationDays)
		member.ExpiresAt = &expiry
	}

	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}

func GetMember(c *gin.Context) {
	member, ok := loadMember(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}

func DeleteMember(c *gin.Context) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	res := database.DB.Where("id = ? AND gym_id = ?", c.Param("id"), gymID).Delete(&members.Member{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}

/* ---------- BMI ---------- */

func AddBMIRecord(c *gin.Context) {
	member, ok := loadMember(c)
	if !ok {
		return
	}

	var input struct {
		HeightCM float64 `json:"height_cm" binding:"required"`
		WeightKG float64 `json:"weight_kg" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.HeightCM <= 0 || input.WeightKG <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Height and weight must be positive"})
		return
	}

	record := members.BMIRecord{
		MemberID:   member.ID,
		HeightCM:   input.HeightCM,
		WeightKG:   input.WeightKG,
		BMI:        members.ComputeBMI(input.HeightCM, input.WeightKG),
		RecordedAt: time.Now(),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save BMI record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": record})
}

func ListBMIRecords(c *gin.Context) {
	member, ok := loadMember(c)
	if !ok {
		return
	}

	var records []members.BMIRecord
	if err := database.DB.Where("member_id = ?", member.ID).Order("recorded_at desc").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load BMI records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

/* ---------- DIET PLANS ---------- */

func AddDietPlan(c *gin.Context) {
	member, ok := loadMember(c)
	if !ok {
		return
	}

	var input struct {
		Title     string `json:"title" binding:"required"`
		Notes     string `json:"notes"`
		TrainerID *uint  `json:"trainer_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := members.DietPlan{
		MemberID:  member.ID,
		TrainerID: input.TrainerID,
		Title:     input.Title,
		Notes:     input.Notes,
	}
	if err := database.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save diet plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"diet_plan": plan})
}

func ListDietPlans(c *gin.Context) {
	member, ok := loadMember(c)
	if !ok {
		return
	}

	var list []members.DietPlan
	if err := database.DB.Where("member_id = ?", member.ID).Order("id desc").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load diet plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"diet_plans": list})
}

// loadMember fetches the :id member scoped to the caller's gym,
// writing the error response itself on failure.
func loadMember(c *gin.Context) (members.Member, bool) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return members.Member{}, false
	}

	var member members.Member
	if err := database.DB.Where("id = ? AND gym_id = ?", c.Param("id"), gymID).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return members.Member{}, false
	}
	return member, true
}
