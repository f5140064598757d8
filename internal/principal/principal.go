package principal

// Principal is the resolved identity behind a valid access token: the user,
// their organization, the union of permissions across all assigned roles,
// and the employee record mapped to the user (if any).
type Principal struct {
	UserID      string
	OrgID       string
	Roles       []string
	Permissions []string
	EmployeeID  *string
}

// Missing returns the required permission keys the principal does not hold.
// Checks are AND-semantics only; every required key must be present.
func (p *Principal) Missing(required ...string) []string {
	held := make(map[string]struct{}, len(p.Permissions))
	for _, perm := range p.Permissions {
		held[perm] = struct{}{}
	}

	var missing []string
	for _, req := range required {
		if _, ok := held[req]; !ok {
			missing = append(missing, req)
		}
	}
	return missing
}

// HasEmployee reports whether the principal is mapped to an employee record.
func (p *Principal) HasEmployee() bool {
	return p.EmployeeID != nil && *p.EmployeeID != ""
}
