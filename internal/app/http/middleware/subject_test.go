package middleware

import (
	"testing"

	"gym-app/internal/domain/access"
	"gym-app/internal/domain/gyms"
	"gym-app/internal/domain/users"
)

func TestBuildSubjectWithGym(t *testing.T) {
	user := users.User{ID: 7, Role: string(access.RoleGymOwner)}
	gym := &gyms.Gym{ID: 3, OwnerID: 7, SubscriptionName: "Premium"}

	sub, gymID := BuildSubject(user, gym)
	if sub.Role != access.RoleGymOwner {
		t.Errorf("role = %q, want gym_owner", sub.Role)
	}
	if sub.SubscriptionName != "Premium" {
		t.Errorf("subscription name = %q, want Premium", sub.SubscriptionName)
	}
	if gymID == nil || *gymID != 3 {
		t.Errorf("gymID = %v, want 3", gymID)
	}
}

func TestBuildSubjectWithoutGym(t *testing.T) {
	user := users.User{ID: 7, Role: string(access.RoleGymOwner)}

	sub, gymID := BuildSubject(user, nil)
	if sub.SubscriptionName != "" {
		t.Errorf("subscription name = %q, want empty", sub.SubscriptionName)
	}
	if gymID != nil {
		t.Errorf("gymID = %v, want nil", gymID)
	}

	// Empty subscription name degrades to the lowest plan, never errors.
	if plan := access.PlanFor(sub); plan != "basic" {
		t.Errorf("resolved plan = %q, want basic", plan)
	}
}
