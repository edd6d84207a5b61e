package domain

import "time"

// AuditEntry records a single state-changing action performed by a user.
type AuditEntry struct {
	Actor  string    `json:"actor" bson:"actor"`
	Action string    `json:"action" bson:"action"`
	Detail string    `json:"detail,omitempty" bson:"detail,omitempty"`
	At     time.Time `json:"at" bson:"at"`
}

const (
	AuditRegister       = "register"
	AuditLogin          = "login"
	AuditLogout         = "logout"
	AuditPasswordChange = "change_password"
	AuditProfileUpdate  = "update_profile"
	AuditCreateAdmin    = "create_admin"
	AuditPolicyAdd      = "add_policy"
	AuditPolicyRemove   = "remove_policy"
	AuditPolicyStatus   = "policy_status"
	AuditClaimFile      = "file_claim"
	AuditClaimReview    = "review_claim"
	AuditSnapshotSave   = "save_snapshot"
	AuditSnapshotLoad   = "load_snapshot"
)
