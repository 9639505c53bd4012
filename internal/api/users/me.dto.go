package users

type MeResponse struct {
	User   UserDTO   `json:"user"`
	Gym    *GymDTO   `json:"gym"`
	Access AccessDTO `json:"access"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID       uint    `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Lastname string  `json:"lastname"`
	Tel      *string `json:"tel"`
	Role     string  `json:"role"`
}

/* ---------- GYM ---------- */

type GymDTO struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Address          string `json:"address,omitempty"`
	Phone            string `json:"phone,omitempty"`
	SubscriptionName string `json:"subscription_name,omitempty"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	Plan     string    `json:"plan"`
	PlanName string    `json:"plan_name"`
	Features []string  `json:"features"`
	Limits   LimitsDTO `json:"limits"`
}

type LimitsDTO struct {
	TrainerLimit      int  `json:"trainer_limit"` // -1 = unlimited
	TrainerCount      int  `json:"trainer_count"`
	TrainersExhausted bool `json:"trainers_exhausted"`
	PackageLimit      int  `json:"package_limit"` // -1 = unlimited
	PackageCount      int  `json:"package_count"`
	PackagesExhausted bool `json:"packages_exhausted"`
}
