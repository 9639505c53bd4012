package access

import "gym-app/internal/domain/plans"

// Decision is the outcome of a feature-guard check. When denied,
// BlockedBy names the feature that failed and Upgrade (if non-nil)
// names the cheapest plan that would unlock it.
type Decision struct {
	Allowed   bool
	Plan      plans.Plan
	BlockedBy plans.FeatureCode
	Upgrade   *plans.Plan
}

// Decide evaluates a single feature against the subject's plan.
func Decide(sub Subject, feature plans.FeatureCode) Decision {
	plan := PlanFor(sub)
	if HasFeatureAccess(plan, feature) {
		return Decision{Allowed: true, Plan: plan}
	}
	return Decision{
		Allowed:   false,
		Plan:      plan,
		BlockedBy: feature,
		Upgrade:   UpgradeSuggestion(plan, feature),
	}
}

// DecideAll requires every feature. Short-circuits on the first denial
// and cites that feature as the blocker.
func DecideAll(sub Subject, features ...plans.FeatureCode) Decision {
	plan := PlanFor(sub)
	for _, f := range features {
		if !HasFeatureAccess(plan, f) {
			return Decision{
				Allowed:   false,
				Plan:      plan,
				BlockedBy: f,
				Upgrade:   UpgradeSuggestion(plan, f),
			}
		}
	}
	return Decision{Allowed: true, Plan: plan}
}

// DecideAny requires at least one feature. Short-circuits on the first
// grant; when everything is denied the first feature is cited so the
// upgrade prompt stays deterministic.
func DecideAny(sub Subject, features ...plans.FeatureCode) Decision {
	plan := PlanFor(sub)
	for _, f := range features {
		if HasFeatureAccess(plan, f) {
			return Decision{Allowed: true, Plan: plan}
		}
	}
	d := Decision{Allowed: false, Plan: plan}
	if len(features) > 0 {
		d.BlockedBy = features[0]
		d.Upgrade = cheapestGrantingAny(plan, features)
	}
	return d
}

// cheapestGrantingAny finds the first plan above current that grants at
// least one of the features.
func cheapestGrantingAny(current plans.Plan, features []plans.FeatureCode) *plans.Plan {
	for _, p := range plans.Above(current) {
		for _, f := range features {
			if HasFeatureAccess(p, f) {
				suggestion := p
				return &suggestion
			}
		}
	}
	return nil
}
