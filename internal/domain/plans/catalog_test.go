package plans

import "testing"

func TestCatalogIsExhaustive(t *testing.T) {
	if len(Catalog) != len(Order) {
		t.Fatalf("catalog has %d entries, order has %d plans", len(Catalog), len(Order))
	}
	for _, p := range Order {
		if _, ok := Catalog[p]; !ok {
			t.Errorf("plan %q has no catalog definition", p)
		}
	}
}

func TestCatalogDisplayNamesUnique(t *testing.T) {
	seen := map[string]Plan{}
	for _, p := range Order {
		name := Catalog[p].DisplayName
		if name == "" {
			t.Errorf("plan %q has an empty display name", p)
			continue
		}
		if other, ok := seen[name]; ok {
			t.Errorf("display name %q shared by %q and %q", name, other, p)
		}
		seen[name] = p
	}
}

// Higher plans are supposed to be supersets of lower ones. This is a
// catalog convention, not enforced at runtime, so the test is the only
// thing standing between us and a plan that silently loses features.
func TestCatalogFeatureSetsAreSupersets(t *testing.T) {
	for i := 1; i < len(Order); i++ {
		lower := Catalog[Order[i-1]]
		higher := Catalog[Order[i]]
		for _, f := range lower.AllowedFeatures {
			if !higher.HasFeature(f) {
				t.Errorf("plan %q drops feature %q granted by %q", Order[i], f, Order[i-1])
			}
		}
	}
}

func TestCatalogLimitsGrowWithRank(t *testing.T) {
	for i := 1; i < len(Order); i++ {
		lower := Catalog[Order[i-1]]
		higher := Catalog[Order[i]]
		if !IsUnlimited(higher.TrainerLimit) && higher.TrainerLimit < lower.TrainerLimit {
			t.Errorf("plan %q trainer limit %d below %q's %d",
				Order[i], higher.TrainerLimit, Order[i-1], lower.TrainerLimit)
		}
		if !IsUnlimited(higher.PackageLimit) && !IsUnlimited(lower.PackageLimit) &&
			higher.PackageLimit < lower.PackageLimit {
			t.Errorf("plan %q package limit %d below %q's %d",
				Order[i], higher.PackageLimit, Order[i-1], lower.PackageLimit)
		}
	}
}

// Every feature must be reachable through some plan, otherwise an
// upgrade prompt for it can never be satisfied.
func TestEveryFeatureGrantedBySomePlan(t *testing.T) {
	top := Catalog[Highest()]
	for _, f := range AllFeatures {
		if !top.HasFeature(f) {
			t.Errorf("feature %q is not granted even by the highest plan", f)
		}
	}
}

func TestHasFeatureMembership(t *testing.T) {
	for _, p := range Order {
		def := Catalog[p]
		granted := map[FeatureCode]bool{}
		for _, f := range def.AllowedFeatures {
			granted[f] = true
			if !def.HasFeature(f) {
				t.Errorf("plan %q: HasFeature(%q) = false for a listed feature", p, f)
			}
		}
		for _, f := range AllFeatures {
			if !granted[f] && def.HasFeature(f) {
				t.Errorf("plan %q: HasFeature(%q) = true for an unlisted feature", p, f)
			}
		}
	}
}

func TestRankOrdering(t *testing.T) {
	for i, p := range Order {
		if Rank(p) != i {
			t.Errorf("Rank(%q) = %d, want %d", p, Rank(p), i)
		}
	}
	if Rank(Plan("gold")) != -1 {
		t.Errorf("Rank of unknown plan = %d, want -1", Rank(Plan("gold")))
	}
}

func TestAbove(t *testing.T) {
	above := Above(PlanBasic)
	if len(above) != len(Order)-1 {
		t.Fatalf("Above(basic) returned %d plans, want %d", len(above), len(Order)-1)
	}
	if above[0] != PlanStandard {
		t.Errorf("Above(basic)[0] = %q, want %q", above[0], PlanStandard)
	}
	if got := Above(Highest()); len(got) != 0 {
		t.Errorf("Above(highest) returned %d plans, want 0", len(got))
	}
	if got := Above(Plan("gold")); len(got) != len(Order) {
		t.Errorf("Above(unknown) returned %d plans, want the full order", len(got))
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Plan
		ok   bool
	}{
		{"basic", PlanBasic, true},
		{"  Premium ", PlanPremium, true},
		{"ENTERPRISE", PlanEnterprise, true},
		{"gold", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestGetFallsBackToLowest(t *testing.T) {
	def := Get(Plan("gold"))
	if def.DisplayName != Catalog[Lowest()].DisplayName {
		t.Errorf("Get(unknown) = %q, want the lowest plan's definition", def.DisplayName)
	}
}
