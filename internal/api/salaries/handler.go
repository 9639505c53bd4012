package salaries

import (
	"net/http"
	"regexp"
	"time"

	"gym-app/database"
	"gym-app/internal/app/http/middleware"
	"gym-app/internal/domain/salaries"
	"gym-app/internal/domain/trainers"

	"github.com/gin-gonic/gin"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// SettleSalary records a salary payout for a trainer. One settlement
// per trainer per month.
func SettleSalary(c *gin.Context) {
	var input struct {
		TrainerID uint     `json:"trainer_id" binding:"required"`
		Month     string   `json:"month" binding:"required"` // "2026-08"
		Amount    *float64 `json:"amount"`
		Note      string   `json:"note"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !monthPattern.MatchString(input.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must look like 2026-08"})
		return
	}

	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	var trainer trainers.Trainer
	if err := database.DB.Where("id = ? AND gym_id = ?", input.TrainerID, gymID).First(&trainer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trainer not found"})
		return
	}

	var existing int64
	database.DB.Model(&salaries.Settlement{}).
		Where("trainer_id = ? AND month = ?", trainer.ID, input.Month).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Salary already settled for this month"})
		return
	}

	amount := trainer.MonthlySalary
	if input.Amount != nil {
		amount = *input.Amount
	}

	settlement := salaries.Settlement{
		GymID:     gymID,
		TrainerID: trainer.ID,
		Month:     input.Month,
		Amount:    amount,
		Note:      input.Note,
		PaidAt:    time.Now(),
	}
	if err := database.DB.Create(&settlement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record settlement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settlement": settlement})
}

func ListSettlements(c *gin.Context) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	q := database.DB.Where("gym_id = ?", gymID)
	if month := c.Query("month"); month != "" {
		q = q.Where("month = ?", month)
	}

	var list []salaries.Settlement
	if err := q.Order("paid_at desc").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settlements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settlements": list})
}
