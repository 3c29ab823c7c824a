package domain

// ClaimTypeRole is the claim type used for role-membership entries in the
// aggregated claim set.
const ClaimTypeRole = "role"

// AggregateClaims computes the effective claim set for a user: the user's
// direct claims, the claims of every role the user holds, and one
// role-membership claim per role name. Duplicates (same type and value) are
// collapsed; order follows first appearance so the result is deterministic.
func AggregateClaims(direct []Claim, roles []Role) []Claim {
	seen := make(map[Claim]struct{}, len(direct))
	out := make([]Claim, 0, len(direct)+len(roles))

	add := func(c Claim) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, c := range direct {
		add(c)
	}
	for _, r := range roles {
		for _, c := range r.Claims {
			add(c)
		}
		add(Claim{Type: ClaimTypeRole, Value: r.Name})
	}
	return out
}
