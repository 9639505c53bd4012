package access

import (
	"testing"

	"gym-app/internal/domain/plans"
)

func basicOwner() Subject {
	return Subject{Role: RoleGymOwner, SubscriptionName: "Basic"}
}

func TestDecideAllowed(t *testing.T) {
	d := Decide(basicOwner(), plans.FeatureDietPlans)
	if !d.Allowed {
		t.Fatal("basic owner should be allowed diet plans")
	}
	if d.Plan != plans.PlanBasic {
		t.Errorf("decision plan = %q, want basic", d.Plan)
	}
	if d.BlockedBy != "" || d.Upgrade != nil {
		t.Error("allowed decision should carry no blocker or upgrade")
	}
}

func TestDecideDeniedWithUpgrade(t *testing.T) {
	d := Decide(basicOwner(), plans.FeatureSalarySettlement)
	if d.Allowed {
		t.Fatal("basic owner should be denied salary settlement")
	}
	if d.BlockedBy != plans.FeatureSalarySettlement {
		t.Errorf("BlockedBy = %q, want salary settlement", d.BlockedBy)
	}
	if d.Upgrade == nil || *d.Upgrade != plans.PlanPremium {
		t.Errorf("Upgrade = %v, want premium", d.Upgrade)
	}
}

func TestDecideRoleOverride(t *testing.T) {
	sub := Subject{Role: RoleTrainer, SubscriptionName: ""}
	for _, f := range plans.AllFeatures {
		if d := Decide(sub, f); !d.Allowed {
			t.Errorf("trainer denied %q", f)
		}
	}
}

func TestDecideAllCitesBlockingFeature(t *testing.T) {
	// Basic grants diet plans but not member BMI: the denial must cite
	// BMI, the one that actually failed.
	d := DecideAll(basicOwner(), plans.FeatureDietPlans, plans.FeatureMemberBMI)
	if d.Allowed {
		t.Fatal("conjunction with one missing feature should be denied")
	}
	if d.BlockedBy != plans.FeatureMemberBMI {
		t.Errorf("BlockedBy = %q, want member BMI", d.BlockedBy)
	}
	if d.Upgrade == nil || *d.Upgrade != plans.PlanStandard {
		t.Errorf("Upgrade = %v, want standard", d.Upgrade)
	}
}

func TestDecideAllShortCircuits(t *testing.T) {
	// First missing feature wins even when a later one is also missing.
	d := DecideAll(basicOwner(), plans.FeatureSalarySettlement, plans.FeatureMultiBranch)
	if d.BlockedBy != plans.FeatureSalarySettlement {
		t.Errorf("BlockedBy = %q, want the first missing feature", d.BlockedBy)
	}
}

func TestDecideAllAllGranted(t *testing.T) {
	d := DecideAll(basicOwner(), plans.FeatureDietPlans, plans.FeatureMemberManagement)
	if !d.Allowed {
		t.Fatal("conjunction of granted features should be allowed")
	}
}

func TestDecideAnyOneGrantedSuffices(t *testing.T) {
	// Diet plans is granted, member BMI is not; either order passes.
	if d := DecideAny(basicOwner(), plans.FeatureDietPlans, plans.FeatureMemberBMI); !d.Allowed {
		t.Error("disjunction with a granted feature should be allowed")
	}
	if d := DecideAny(basicOwner(), plans.FeatureMemberBMI, plans.FeatureDietPlans); !d.Allowed {
		t.Error("disjunction should not depend on feature order")
	}
}

func TestDecideAnyAllDenied(t *testing.T) {
	d := DecideAny(basicOwner(), plans.FeatureSalarySettlement, plans.FeatureMultiBranch)
	if d.Allowed {
		t.Fatal("disjunction of ungranted features should be denied")
	}
	if d.BlockedBy != plans.FeatureSalarySettlement {
		t.Errorf("BlockedBy = %q, want the first feature", d.BlockedBy)
	}
	// Premium grants salary settlement, so it is the cheapest plan
	// satisfying the disjunction.
	if d.Upgrade == nil || *d.Upgrade != plans.PlanPremium {
		t.Errorf("Upgrade = %v, want premium", d.Upgrade)
	}
}

func TestDecideAnyNoFeatures(t *testing.T) {
	d := DecideAny(basicOwner())
	if d.Allowed {
		t.Fatal("empty disjunction should be denied")
	}
	if d.Upgrade != nil {
		t.Error("empty disjunction should carry no upgrade suggestion")
	}
}
