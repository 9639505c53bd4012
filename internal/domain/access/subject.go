package access

// Role constants (single source of truth). Stored lowercase in JWT
// claims and in the users table.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleGymOwner Role = "gym_owner"
	RoleTrainer  Role = "trainer"
	RoleMember   Role = "member"
	RolePTMember Role = "pt_member"
)

// Subject is the current actor as seen by feature gating: a role plus
// the free-text subscription name the billing side wrote on the gym.
// Built once per request at the HTTP boundary and passed in explicitly,
// never read from globals.
type Subject struct {
	Role             Role
	SubscriptionName string
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleGymOwner, RoleTrainer, RoleMember, RolePTMember:
		return true
	}
	return false
}
