// Package plans maps user roles onto the plan buckets the admin dashboard
// reports.
package plans

import "github.com/babyfiction/storehub/internal/domain/models"

// byRole is the role to plan correspondence. The pairing is intentionally
// arbitrary: it was defined this way when the dashboard was first built and
// the frontend depends on it literally, so it must not be "rationalized".
var byRole = map[string]string{
	models.RoleCustomer: "free",
	models.RoleDriver:   "premium",
	models.RoleAdmin:    "enterprise",
}

// Buckets holds the per-plan user counts. All three keys are always present
// in the serialized form, even when zero.
type Buckets struct {
	Free       int64 `json:"free"`
	Premium    int64 `json:"premium"`
	Enterprise int64 `json:"enterprise"`
}

// FromRoleCounts folds a sparse role count map into dense plan buckets.
// Roles outside the recognized set are dropped; they still count toward the
// total user figure reported alongside the buckets.
func FromRoleCounts(counts map[string]int64) Buckets {
	var b Buckets
	for role, n := range counts {
		switch byRole[role] {
		case "free":
			b.Free += n
		case "premium":
			b.Premium += n
		case "enterprise":
			b.Enterprise += n
		}
	}
	return b
}
