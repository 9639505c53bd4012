package access

import (
	"testing"

	"gym-app/internal/domain/plans"
)

func TestResolvePlanEmptyInput(t *testing.T) {
	if got := ResolvePlan(""); got != plans.Lowest() {
		t.Errorf("ResolvePlan(\"\") = %q, want %q", got, plans.Lowest())
	}
	if got := ResolvePlan("   "); got != plans.Lowest() {
		t.Errorf("ResolvePlan(whitespace) = %q, want %q", got, plans.Lowest())
	}
}

func TestResolvePlanCaseInsensitive(t *testing.T) {
	for _, name := range []string{"Premium", "premium", "PREMIUM", "  pReMiUm  "} {
		if got := ResolvePlan(name); got != plans.PlanPremium {
			t.Errorf("ResolvePlan(%q) = %q, want %q", name, got, plans.PlanPremium)
		}
	}
}

func TestResolvePlanMatchesEveryDisplayName(t *testing.T) {
	for _, p := range plans.Order {
		name := plans.Catalog[p].DisplayName
		if got := ResolvePlan(name); got != p {
			t.Errorf("ResolvePlan(%q) = %q, want %q", name, got, p)
		}
	}
}

func TestResolvePlanUnmatchedFallsToLowest(t *testing.T) {
	for _, name := range []string{"Gold", "Premium Plus", "trial", "42"} {
		if got := ResolvePlan(name); got != plans.Lowest() {
			t.Errorf("ResolvePlan(%q) = %q, want %q", name, got, plans.Lowest())
		}
	}
}

func TestPlanForRoleOverride(t *testing.T) {
	// Gating only restricts gym owners; every other role gets the
	// highest plan no matter what the subscription name says.
	for _, role := range []Role{RoleAdmin, RoleTrainer, RoleMember, RolePTMember} {
		sub := Subject{Role: role, SubscriptionName: "Basic"}
		if got := PlanFor(sub); got != plans.Highest() {
			t.Errorf("PlanFor(role=%q) = %q, want %q", role, got, plans.Highest())
		}
		for _, f := range plans.AllFeatures {
			if !HasFeatureAccess(PlanFor(sub), f) {
				t.Errorf("role %q denied feature %q", role, f)
			}
		}
	}
}

func TestPlanForGymOwnerResolves(t *testing.T) {
	sub := Subject{Role: RoleGymOwner, SubscriptionName: "Standard"}
	if got := PlanFor(sub); got != plans.PlanStandard {
		t.Errorf("PlanFor(gym_owner, Standard) = %q, want %q", got, plans.PlanStandard)
	}

	sub.SubscriptionName = ""
	if got := PlanFor(sub); got != plans.Lowest() {
		t.Errorf("PlanFor(gym_owner, empty) = %q, want %q", got, plans.Lowest())
	}
}

func TestAvailableFeaturesMatchesAccess(t *testing.T) {
	for _, p := range plans.Order {
		available := map[plans.FeatureCode]bool{}
		for _, f := range AvailableFeatures(p) {
			available[f] = true
			if !HasFeatureAccess(p, f) {
				t.Errorf("plan %q: available feature %q not accessible", p, f)
			}
		}
		for _, f := range plans.AllFeatures {
			if !available[f] && HasFeatureAccess(p, f) {
				t.Errorf("plan %q: feature %q accessible but not listed", p, f)
			}
		}
	}
}

func TestTrainerLimitReached(t *testing.T) {
	// basic caps at 2 trainers
	if IsTrainerLimitReached(plans.PlanBasic, 1) {
		t.Error("basic with 1 trainer should not be at the limit")
	}
	if !IsTrainerLimitReached(plans.PlanBasic, 2) {
		t.Error("basic with 2 trainers should be at the limit")
	}
	if !IsTrainerLimitReached(plans.PlanBasic, 3) {
		t.Error("basic with 3 trainers should be over the limit")
	}

	// enterprise is unlimited
	for _, n := range []int{0, 1, 100, 1 << 20} {
		if IsTrainerLimitReached(plans.PlanEnterprise, n) {
			t.Errorf("enterprise with %d trainers should never hit a limit", n)
		}
	}
}

func TestPackageLimitReached(t *testing.T) {
	if IsPackageLimitReached(plans.PlanBasic, 2) {
		t.Error("basic with 2 packages should not be at the limit")
	}
	if !IsPackageLimitReached(plans.PlanBasic, 3) {
		t.Error("basic with 3 packages should be at the limit")
	}
	for _, n := range []int{0, 50, 10_000} {
		if IsPackageLimitReached(plans.PlanPremium, n) {
			t.Errorf("premium with %d packages should never hit a limit", n)
		}
	}
}

func TestUpgradeSuggestionAlreadyGranted(t *testing.T) {
	for _, p := range plans.Order {
		for _, f := range AvailableFeatures(p) {
			if s := UpgradeSuggestion(p, f); s != nil {
				t.Errorf("plan %q already grants %q but got suggestion %q", p, f, *s)
			}
		}
	}
}

func TestUpgradeSuggestionFindsCheapestPlan(t *testing.T) {
	// Salary settlement first appears on premium.
	s := UpgradeSuggestion(plans.PlanBasic, plans.FeatureSalarySettlement)
	if s == nil || *s != plans.PlanPremium {
		t.Fatalf("UpgradeSuggestion(basic, salary) = %v, want premium", s)
	}
	s = UpgradeSuggestion(plans.PlanStandard, plans.FeatureSalarySettlement)
	if s == nil || *s != plans.PlanPremium {
		t.Fatalf("UpgradeSuggestion(standard, salary) = %v, want premium", s)
	}
}

func TestUpgradeSuggestionTopOnlyFeature(t *testing.T) {
	// Multi-branch is enterprise-only.
	for _, p := range []plans.Plan{plans.PlanBasic, plans.PlanStandard, plans.PlanPremium} {
		s := UpgradeSuggestion(p, plans.FeatureMultiBranch)
		if s == nil || *s != plans.PlanEnterprise {
			t.Errorf("UpgradeSuggestion(%q, multi-branch) = %v, want enterprise", p, s)
		}
	}
	if s := UpgradeSuggestion(plans.PlanEnterprise, plans.FeatureMultiBranch); s != nil {
		t.Errorf("UpgradeSuggestion(enterprise, multi-branch) = %q, want nil", *s)
	}
}

func TestUpgradeSuggestionUnknownFeature(t *testing.T) {
	// A feature no plan grants yields no suggestion rather than an error.
	if s := UpgradeSuggestion(plans.PlanBasic, plans.FeatureCode("TELEPORTATION")); s != nil {
		t.Errorf("UpgradeSuggestion for ungranted feature = %q, want nil", *s)
	}
}
