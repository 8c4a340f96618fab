package entitlement

// Plan is the subscription tier governing feature access.
type Plan string

const (
	// PlanFree is the default tier and the fallback on any resolution fault.
	PlanFree Plan = "free"
	// PlanUnlimited is the paid tier.
	PlanUnlimited Plan = "unlimited"
)

// IsValid reports whether the plan is one of the known tiers. Unknown values
// in the store are treated as malformed and resolve to the free tier.
func (p Plan) IsValid() bool {
	return p == PlanFree || p == PlanUnlimited
}
