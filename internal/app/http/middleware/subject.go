package middleware

import (
	"net/http"

	"gym-app/database"
	"gym-app/internal/domain/access"
	"gym-app/internal/domain/gyms"
	"gym-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

const (
	subjectKey = "subject"
	gymIDKey   = "gym_id"
)

// SubjectMiddleware normalizes the many shapes a user/gym pair can take
// in the database into one canonical access.Subject, so feature gating
// downstream never touches the raw rows. Runs after AuthMiddleware.
func SubjectMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user users.User
		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		sub, gymID := BuildSubject(user, lookupGym(user))
		c.Set(subjectKey, sub)
		if gymID != nil {
			c.Set(gymIDKey, *gymID)
		}
		c.Next()
	}
}

// lookupGym resolves a user's gym: owners via gyms.owner_id, staff and
// members via users.gym_id.
func lookupGym(user users.User) *gyms.Gym {
	var gym gyms.Gym
	if user.Role == string(access.RoleGymOwner) {
		if err := database.DB.Where("owner_id = ?", user.ID).First(&gym).Error; err != nil {
			return nil
		}
		return &gym
	}
	if user.GymID == nil {
		return nil
	}
	if err := database.DB.First(&gym, *user.GymID).Error; err != nil {
		return nil
	}
	return &gym
}

// BuildSubject folds a user row and its (possibly missing) gym into the
// canonical Subject value. A missing gym means an empty subscription
// name, which resolves to the lowest plan — never an error.
func BuildSubject(user users.User, gym *gyms.Gym) (access.Subject, *uint) {
	sub := access.Subject{Role: access.Role(user.Role)}
	if gym == nil {
		return sub, nil
	}
	sub.SubscriptionName = gym.SubscriptionName
	return sub, &gym.ID
}

// SubjectFrom returns the Subject stored by SubjectMiddleware.
func SubjectFrom(c *gin.Context) (access.Subject, bool) {
	v, ok := c.Get(subjectKey)
	if !ok {
		return access.Subject{}, false
	}
	sub, ok := v.(access.Subject)
	return sub, ok
}

// GymIDFrom returns the gym the subject is scoped to, when known.
func GymIDFrom(c *gin.Context) (uint, bool) {
	v, ok := c.Get(gymIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// SetSubject stores a Subject directly; used by tests and by handlers
// that already hold the user row.
func SetSubject(c *gin.Context, sub access.Subject, gymID *uint) {
	c.Set(subjectKey, sub)
	if gymID != nil {
		c.Set(gymIDKey, *gymID)
	}
}
