package plans

import (
	"net/http"

	"gym-app/internal/app/http/middleware"
	"gym-app/internal/domain/access"
	"gym-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

type PlanDTO struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Features     []string `json:"features"`
	TrainerLimit int      `json:"trainer_limit"` // -1 = unlimited
	PackageLimit int      `json:"package_limit"` // -1 = unlimited
}

// ListPlans returns the full catalog, lowest plan first.
func ListPlans(c *gin.Context) {
	out := make([]PlanDTO, 0, len(plans.Order))
	for _, p := range plans.Order {
		def := plans.Catalog[p]
		features := make([]string, 0, len(def.AllowedFeatures))
		for _, f := range def.AllowedFeatures {
			features = append(features, string(f))
		}
		out = append(out, PlanDTO{
			Code:         string(p),
			Name:         def.DisplayName,
			Features:     features,
			TrainerLimit: def.TrainerLimit,
			PackageLimit: def.PackageLimit,
		})
	}
	c.JSON(http.StatusOK, gin.H{"plans": out})
}

// UpgradeSuggestionHandler answers "what plan unlocks feature X for me".
// A null suggestion means either the feature is already available or no
// plan grants it; the UI suppresses the prompt in both cases.
func UpgradeSuggestionHandler(c *gin.Context) {
	feature := plans.FeatureCode(c.Query("feature"))
	if feature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing feature parameter"})
		return
	}

	known := false
	for _, f := range plans.AllFeatures {
		if f == feature {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown feature code"})
		return
	}

	sub, ok := middleware.SubjectFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	plan := access.PlanFor(sub)
	resp := gin.H{
		"plan":       string(plan),
		"feature":    string(feature),
		"accessible": access.HasFeatureAccess(plan, feature),
	}
	if s := access.UpgradeSuggestion(plan, feature); s != nil {
		resp["upgrade_to"] = string(*s)
		resp["upgrade_to_name"] = plans.Get(*s).DisplayName
	}
	c.JSON(http.StatusOK, resp)
}
