package middleware

import (
	"net/http"

	"gym-app/internal/domain/access"
	"gym-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// GuardOption tweaks how a feature guard reacts to a denial.
type GuardOption func(*guardConfig)

type guardConfig struct {
	redirectTo string
}

// WithRedirect makes the guard answer a denial with a 303 redirect
// (browser-facing routes) instead of a 403 JSON body.
func WithRedirect(target string) GuardOption {
	return func(cfg *guardConfig) { cfg.redirectTo = target }
}

// RequireFeature blocks the request unless the subject's plan grants
// the feature.
func RequireFeature(feature plans.FeatureCode, opts ...GuardOption) gin.HandlerFunc {
	return guard(func(sub access.Subject) access.Decision {
		return access.Decide(sub, feature)
	}, opts)
}

// RequireAllFeatures blocks unless the plan grants every feature.
func RequireAllFeatures(features []plans.FeatureCode, opts ...GuardOption) gin.HandlerFunc {
	return guard(func(sub access.Subject) access.Decision {
		return access.DecideAll(sub, features...)
	}, opts)
}

// RequireAnyFeature blocks unless the plan grants at least one feature.
func RequireAnyFeature(features []plans.FeatureCode, opts ...GuardOption) gin.HandlerFunc {
	return guard(func(sub access.Subject) access.Decision {
		return access.DecideAny(sub, features...)
	}, opts)
}

func guard(decide func(access.Subject) access.Decision, opts []GuardOption) gin.HandlerFunc {
	var cfg guardConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(c *gin.Context) {
		sub, ok := SubjectFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		decision := decide(sub)
		if decision.Allowed {
			c.Next()
			return
		}

		if cfg.redirectTo != "" {
			c.Redirect(http.StatusSeeOther, cfg.redirectTo)
			c.Abort()
			return
		}

		body := gin.H{
			"error":   "Your plan does not include this feature",
			"feature": decision.BlockedBy,
		}
		if decision.Upgrade != nil {
			body["upgrade_to"] = plans.Get(*decision.Upgrade).DisplayName
		}
		c.AbortWithStatusJSON(http.StatusForbidden, body)
	}
}
