package plans

// FeatureCode identifies a gated capability. The set is closed:
// codes are defined here and never created at runtime.
type FeatureCode string

const (
	FeatureMemberManagement   FeatureCode = "MEMBER_MANAGEMENT"
	FeaturePackageManagement  FeatureCode = "PACKAGE_MANAGEMENT"
	FeatureDietPlans          FeatureCode = "DIET_PLANS"
	FeatureMemberBMI          FeatureCode = "MEMBER_BMI"
	FeatureAttendanceTracking FeatureCode = "ATTENDANCE_TRACKING"
	FeatureWorkoutPlans       FeatureCode = "WORKOUT_PLANS"
	FeatureSalarySettlement   FeatureCode = "SALARY_SETTLEMENT"
	FeatureSMSNotifications   FeatureCode = "SMS_NOTIFICATIONS"
	FeatureRevenueReports     FeatureCode = "REVENUE_REPORTS"
	FeatureMultiBranch        FeatureCode = "MULTI_BRANCH"
)

// AllFeatures lists every known feature code.
var AllFeatures = []FeatureCode{
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
}

func (f FeatureCode) String() string { return string(f) }
