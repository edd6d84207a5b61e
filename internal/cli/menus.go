package cli

import (
	"context"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// Action runs one menu entry for the authenticated user.
type Action func(a *App, ctx context.Context, user *domain.User) error

// MenuItem is one numbered entry of a role menu. Key labels the entry in
// metrics and logs.
type MenuItem struct {
	Label  string
	Key    string
	Action Action
}

var userProfileItem = MenuItem{"User Profile", "user_profile", (*App).userProfile}

// roleMenus lists each role's entries in display order. Logout and Exit are
// appended by the dispatcher.
var roleMenus = map[domain.Role][]MenuItem{
	domain.RoleAdmin: {
		userProfileItem,
		{"Create Admin Account", "create_admin", (*App).createAdminAccount},
		{"Verify Claim", "admin_verify_claim", (*App).adminVerifyClaim},
		{"Manage Policy", "manage_policy", (*App).managePolicy},
		{"Generate Report", "generate_report", (*App).generateReport},
		{"Audit User Actions", "audit_user_actions", (*App).auditUserActions},
		{"List Users", "list_users", (*App).listUsers},
	},
	domain.RoleAgent: {
		userProfileItem,
		{"List Customers", "list_customers", (*App).listCustomers},
		{"Sell Policy to Customer", "sell_policy", (*App).sellPolicy},
		{"View Customer Policies", "customer_policies", (*App).customerPolicies},
	},
	domain.RoleUnderwriter: {
		userProfileItem,
		{"Review Pending Policies", "pending_policies", (*App).pendingPolicies},
		{"Quote Premium", "quote_premium", (*App).quotePremium},
		{"Approve Policy", "approve_policy", (*App).approvePolicy},
		{"Decline Policy", "decline_policy", (*App).declinePolicy},
	},
	domain.RoleClaimAdjuster: {
		userProfileItem,
		{"List Submitted Claims", "submitted_claims", (*App).submittedClaims},
		{"Verify Claim", "verify_claim", (*App).verifyClaim},
		{"Reject Claim", "reject_claim", (*App).rejectClaim},
	},
	domain.RoleCustomer: {
		userProfileItem,
		{"View Policies", "view_policies", (*App).viewPolicies},
		{"Add Policy", "add_policy", (*App).addPolicy},
		{"Remove Policy", "remove_policy", (*App).removePolicy},
		{"File Claim", "file_claim", (*App).fileClaim},
		{"View Claims", "view_claims", (*App).viewClaims},
		{"Total Premium", "total_premium", (*App).totalPremium},
		{"Save Data", "save_data", (*App).saveData},
		{"Load Data", "load_data", (*App).loadData},
	},
	domain.RoleUnset: {
		userProfileItem,
	},
}

// MenuFor returns the entries for role. Unknown roles get the unset menu.
func MenuFor(role domain.Role) []MenuItem {
	if items, ok := roleMenus[role]; ok {
		return items
	}
	return roleMenus[domain.RoleUnset]
}
