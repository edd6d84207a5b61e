package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReportRow is one key/value line of a report, kept in display order.
type ReportRow struct {
	Key   string
	Value string
}

// Report is the fixed-shape summary produced for admins.
type Report struct {
	GeneratedAt    time.Time
	GeneratedBy    string
	UsersByRole    map[Role]int
	TotalUsers     int
	TotalCustomers int
	TotalPolicies  int
	TotalPremium   float64
	ClaimsByStatus map[ClaimStatus]int
}

// Rows flattens the report into ordered key/value pairs.
func (r Report) Rows() []ReportRow {
	rows := []ReportRow{
		{"generated_at", r.GeneratedAt.Format(time.RFC3339)},
		{"generated_by", r.GeneratedBy},
		{"total_users", fmt.Sprint(r.TotalUsers)},
	}
	for _, role := range Roles {
		rows = append(rows, ReportRow{"users_" + strings.ReplaceAll(role.String(), " ", "_"), fmt.Sprint(r.UsersByRole[role])})
	}
	rows = append(rows, ReportRow{"users_unset", fmt.Sprint(r.UsersByRole[RoleUnset])})
	rows = append(rows,
		ReportRow{"total_customers", fmt.Sprint(r.TotalCustomers)},
		ReportRow{"total_policies", fmt.Sprint(r.TotalPolicies)},
		ReportRow{"total_premium", fmt.Sprintf("%.2f", r.TotalPremium)},
	)
	for _, st := range []ClaimStatus{ClaimSubmitted, ClaimVerified, ClaimRejected} {
		rows = append(rows, ReportRow{"claims_" + string(st), fmt.Sprint(r.ClaimsByStatus[st])})
	}
	return rows
}
