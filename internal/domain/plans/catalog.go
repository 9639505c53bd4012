package plans

// Unlimited marks a limit with no cap.
const Unlimited = -1

// Definition describes what a plan unlocks and how far it stretches.
type Definition struct {
	DisplayName     string
	AllowedFeatures []FeatureCode
	TrainerLimit    int // Unlimited for no cap
	PackageLimit    int // Unlimited for no cap
}

// Catalog maps each plan to its definition. Exhaustive over Order;
// higher plans are supersets of lower ones (checked in tests, not at runtime).
var Catalog = map[Plan]Definition{
	PlanBasic: {
		DisplayName: "Basic",
		AllowedFeatures: []FeatureCode{
			FeatureMemberManagement,
			FeaturePackageManagement,
			FeatureDietPlans,
		},
		TrainerLimit: 2,
		PackageLimit: 3,
	},
	PlanStandard: {
		DisplayName: "Standard",
		AllowedFeatures: []FeatureCode{
			FeatureMemberManagement,
			FeaturePackageManagement,
			FeatureDietPlans,
			FeatureMemberBMI,
			FeatureAttendanceTracking,
		},
		TrainerLimit: 5,
		PackageLimit: 10,
	},
	PlanPremium: {
		DisplayName: "Premium",
		AllowedFeatures: []FeatureCode{
			FeatureMemberManagement,
			FeaturePackageManagement,
			FeatureDietPlans,
			FeatureMemberBMI,
			FeatureAttendanceTracking,
			FeatureWorkoutPlans,
			FeatureSalarySettlement,
			FeatureSMSNotifications,
		},
		TrainerLimit: 15,
		PackageLimit: Unlimited,
	},
	PlanEnterprise: {
		DisplayName: "Enterprise",
		AllowedFeatures: []FeatureCode{
			FeatureMemberManagement,
			FeaturePackageManagement,
			FeatureDietPlans,
			FeatureMemberBMI,
			FeatureAttendanceTracking,
			FeatureWorkoutPlans,
			FeatureSalarySettlement,
			FeatureSMSNotifications,
			FeatureRevenueReports,
			FeatureMultiBranch,
		},
		TrainerLimit: Unlimited,
		PackageLimit: Unlimited,
	},
}

// Get returns the definition for a plan, falling back to the lowest
// plan for anything unknown.
func Get(p Plan) Definition {
	if def, ok := Catalog[p]; ok {
		return def
	}
	return Catalog[Lowest()]
}

// HasFeature reports whether the plan's feature set contains f.
func (d Definition) HasFeature(f FeatureCode) bool {
	for _, have := range d.AllowedFeatures {
		if have == f {
			return true
		}
	}
	return false
}

// IsUnlimited reports whether a limit value means "no cap".
func IsUnlimited(limit int) bool {
	return limit < 0
}
