package packages

import (
	"net/http"

	"gym-app/database"
	"gym-app/internal/app/http/middleware"
	"gym-app/internal/domain/access"
	"gym-app/internal/domain/packages"

	"github.com/gin-gonic/gin"
)

func ListPackages(c *gin.Context) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	var list []packages.Package
	if err := database.DB.Where("gym_id = ?", gymID).Order("id").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load packages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": list})
}

// CreatePackage adds a membership package, enforcing the plan's package
// cap against the live count of active packages.
func CreatePackage(c *gin.Context) {
	var input struct {
		Name         string  `json:"name" binding:"required"`
		Description  string  `json:"description"`
		DurationDays int     `json:"duration_days" binding:"required"`
		Sessions     int     `json:"sessions"`
		Price        float64 `json:"price"`
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
	database.DB.Model(&packages.Package{}).Where("gym_id = ? AND active = ?", gymID, true).Count(&count)

	if access.IsPackageLimitReached(plan, int(count)) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Package limit reached for your plan",
			"limit": access.PackageLimit(plan),
		})
		return
	}

	pkg := packages.Package{
		GymID:        gymID,
		Name:         input.Name,
		Description:  input.Description,
		DurationDays: input.DurationDays,
		Sessions:     input.Sessions,
		Price:        input.Price,
		Active:       true,
	}
	if err := database.DB.Create(&pkg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"package": pkg})
}

func UpdatePackage(c *gin.Context) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	var pkg packages.Package
	if err := database.DB.Where("id = ? AND gym_id = ?", c.Param("id"), gymID).First(&pkg).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}

	var input struct {
		Name         *string  `json:"name"`
		Description  *string  `json:"description"`
		DurationDays *int     `json:"duration_days"`
		Sessions     *int     `json:"sessions"`
		Price        *float64 `json:"price"`
		Active       *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.DurationDays != nil {
		updates["duration_days"] = *input.DurationDays
	}
	if input.Sessions != nil {
		updates["sessions"] = *input.Sessions
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&pkg).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"package": pkg})
}

func DeletePackage(c *gin.Context) {
	gymID, ok := middleware.GymIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No gym associated with this account"})
		return
	}

	res := database.DB.Where("id = ? AND gym_id = ?", c.Param("id"), gymID).Delete(&packages.Package{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
}
