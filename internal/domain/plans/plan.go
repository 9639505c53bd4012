package plans

import "strings"

// Plan constants (single source of truth), ordered lowest to highest.
type Plan string

const (
	PlanBasic      Plan = "basic"
	PlanStandard   Plan = "standard"
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

// Order lists every plan from lowest to highest tier.
var Order = []Plan{PlanBasic, PlanStandard, PlanPremium, PlanEnterprise}

// Lowest and Highest bound the plan order.
func Lowest() Plan  { return Order[0] }
func Highest() Plan { return Order[len(Order)-1] }

// Rank returns the position of p in the plan order.
// Unknown plans rank below basic so they never unlock anything.
func Rank(p Plan) int {
	for i, known := range Order {
		if known == p {
			return i
		}
	}
	return -1
}

// Above returns every plan strictly above p, in ascending order.
func Above(p Plan) []Plan {
	r := Rank(p)
	if r < 0 {
		return Order
	}
	return Order[r+1:]
}

func (p Plan) String() string { return string(p) }

// IsValid reports whether p is a known plan.
func (p Plan) IsValid() bool { return Rank(p) >= 0 }

// Parse maps a plan code string to a Plan, tolerating case and whitespace.
// Returns false for anything outside the known set.
func Parse(s string) (Plan, bool) {
	p := Plan(strings.ToLower(strings.TrimSpace(s)))
	if p.IsValid() {
		return p, true
	}
	return "", false
}
