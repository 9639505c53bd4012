package users

import (
	"gym-app/internal/domain/access"
	"gym-app/internal/domain/gyms"
	"gym-app/internal/domain/plans"
)

func BuildGymDTO(g *gyms.Gym) *GymDTO {
	if g == nil {
		return nil
	}
	return &GymDTO{
		ID:               g.ID,
		Name:             g.Name,
		Address:          g.Address,
		Phone:            g.Phone,
		SubscriptionName: g.SubscriptionName,
	}
}

// BuildAccessDTO reflects the resolved plan back to the UI: the feature
// set governs conditional rendering, the limit fields drive "add
// trainer/package" buttons. Counts come from the caller's live queries.
func BuildAccessDTO(sub access.Subject, trainerCount, packageCount int) AccessDTO {
	plan := access.PlanFor(sub)
	def := plans.Get(plan)

	features := make([]string, 0, len(def.AllowedFeatures))
	for _, f := range def.AllowedFeatures {
		features = append(features, string(f))
	}

	return AccessDTO{
		Plan:     string(plan),
		PlanName: def.DisplayName,
		Features: features,
		Limits: LimitsDTO{
			TrainerLimit:      def.TrainerLimit,
			TrainerCount:      trainerCount,
			TrainersExhausted: access.IsTrainerLimitReached(plan, trainerCount),
			PackageLimit:      def.PackageLimit,
			PackageCount:      packageCount,
			PackagesExhausted: access.IsPackageLimitReached(plan, packageCount),
		},
	}
}
