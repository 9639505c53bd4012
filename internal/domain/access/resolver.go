package access

import (
	"strings"

	"gym-app/internal/domain/plans"
)

// ResolvePlan maps the free-text subscription name from billing to a
// catalog plan. Matching is trim + case-insensitive against display
// names; anything absent or unrecognized falls back to the lowest plan
// so a bad name can never over-grant access.
func ResolvePlan(subscriptionName string) plans.Plan {
	name := strings.TrimSpace(subscriptionName)
	if name == "" {
		return plans.Lowest()
	}

	for _, p := range plans.Order {
		if strings.EqualFold(name, plans.Catalog[p].DisplayName) {
			return p
		}
	}

	// Tolerate codes like "premium" alongside display names.
	if p, ok := plans.Parse(name); ok {
		return p
	}

	return plans.Lowest()
}

// PlanFor resolves the effective plan for a subject. Feature gating
// exists to monetize the gym-owner tier only: every other role gets the
// highest plan unconditionally (their restrictions are role-scoped and
// enforced elsewhere).
func PlanFor(sub Subject) plans.Plan {
	if sub.Role != RoleGymOwner {
		return plans.Highest()
	}
	return ResolvePlan(sub.SubscriptionName)
}

// HasFeatureAccess reports whether the plan's feature set contains f.
func HasFeatureAccess(plan plans.Plan, feature plans.FeatureCode) bool {
	return plans.Get(plan).HasFeature(feature)
}

// AvailableFeatures returns the plan's feature set verbatim.
func AvailableFeatures(plan plans.Plan) []plans.FeatureCode {
	return plans.Get(plan).AllowedFeatures
}

// TrainerLimit returns the plan's trainer cap (plans.Unlimited for none).
func TrainerLimit(plan plans.Plan) int {
	return plans.Get(plan).TrainerLimit
}

// PackageLimit returns the plan's package cap (plans.Unlimited for none).
func PackageLimit(plan plans.Plan) int {
	return plans.Get(plan).PackageLimit
}

// IsTrainerLimitReached reports whether currentCount exhausts the
// plan's trainer cap. The caller supplies the live count; this holds
// no state.
func IsTrainerLimitReached(plan plans.Plan, currentCount int) bool {
	return limitReached(TrainerLimit(plan), currentCount)
}

// IsPackageLimitReached reports whether currentCount exhausts the
// plan's package cap.
func IsPackageLimitReached(plan plans.Plan, currentCount int) bool {
	return limitReached(PackageLimit(plan), currentCount)
}

func limitReached(limit, currentCount int) bool {
	if plans.IsUnlimited(limit) {
		return false
	}
	return currentCount >= limit
}

// UpgradeSuggestion returns the cheapest plan above current that grants
// the feature, or nil when no upgrade would help (feature already
// granted, current is the top plan, or no plan grants it at all —
// the last case is a catalog bug the tests watch for).
func UpgradeSuggestion(current plans.Plan, feature plans.FeatureCode) *plans.Plan {
	if HasFeatureAccess(current, feature) {
		return nil
	}
	for _, p := range plans.Above(current) {
		if HasFeatureAccess(p, feature) {
			suggestion := p
			return &suggestion
		}
	}
	return nil
}
