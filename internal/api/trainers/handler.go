package trainers

import (
	"net/http"

	"gym-app/database"
	"gym-app/internal/app/http/middleware"
	"gym-app/internal/domain/access"
	"gym-app/internal/domain/plans"
	"gym-app/internal/domain/trainers"

	"github.com/gin-gonic/gin"
)

func ListTrainers(c *gin.Context) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	var list []trainers.Trainer
	if err := database.DB.Where("gym_id = ?", gymID).Order("id").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trainers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainers": list})
}

// CreateTrainer adds a trainer, enforcing the plan's trainer cap
// against the live count of active trainers.
func CreateTrainer(c *gin.Context) {
	var input struct {
		Name           string  `json:"name" binding:"required"`
		Tel            string  `json:"tel"`
		Specialization string  `json:"specialization"`
		MonthlySalary  float64 `json:"monthly_salary"`
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
	sub, _ := middleware.SubjectFrom(c)
	plan := access.PlanFor(sub)

	var count int64
	database.DB.Model(&trainers.Trainer{}).Where("gym_id = ? AND active = ?", gymID, true).Count(&count)

	if access.IsTrainerLimitReached(plan, int(count)) {
		body := gin.H{
			"error": "Trainer limit reached for your plan",
			"limit": access.TrainerLimit(plan),
		}
		if s := nextPlanWithHigherTrainerLimit(plan); s != nil {
			body["upgrade_to"] = plans.Get(*s).DisplayName
		}
		c.JSON(http.StatusForbidden, body)
		return
	}

	trainer := trainers.Trainer{
		GymID:          gymID,
		Name:           input.Name,
		Tel:            input.Tel,
		Specialization: input.Specialization,
		MonthlySalary:  input.MonthlySalary,
		Active:         true,
	}
	if err := database.DB.Create(&trainer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trainer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainer": trainer})
}

func nextPlanWithHigherTrainerLimit(current plans.Plan) *plans.Plan {
	cur := access.TrainerLimit(current)
	for _, p := range plans.Above(current) {
		limit := access.TrainerLimit(p)
		if plans.IsUnlimited(limit) || limit > cur {
			suggestion := p
			return &suggestion
		}
	}
	return nil
}

func UpdateTrainer(c *gin.Context) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	var trainer trainers.Trainer
	if err := database.DB.Where("id = ? AND gym_id = ?", c.Param("id"), gymID).First(&trainer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		return
	}

	var input struct {
		Name           *string  `json:"name"`
		Tel            *string  `json:"tel"`
		Specialization *string  `json:"specialization"`
		MonthlySalary  *float64 `json:"monthly_salary"`
		Active         *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Tel != nil {
		updates["tel"] = *input.Tel
	}
	if input.Specialization != nil {
		updates["specialization"] = *input.Specialization
	}
	if input.MonthlySalary != nil {
		updates["monthly_salary"] = *input.MonthlySalary
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&trainer).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trainer"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"trainer": trainer})
}

func DeleteTrainer(c *gin.Context) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	res := database.DB.Where("id = ? AND gym_id = ?", c.Param("id"), gymID).Delete(&trainers.Trainer{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trainer"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted"})
}
