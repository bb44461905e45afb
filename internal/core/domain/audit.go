package domain

import "time"

// AuditAction identifies a security-relevant account event.
type AuditAction string

const (
	AuditRegister       AuditAction = "register"
	AuditLogin          AuditAction = "login"
	AuditTokenRefresh   AuditAction = "token_refresh"
	AuditLogout         AuditAction = "logout"
	AuditPasswordChange AuditAction = "password_change"
	AuditRoleChange     AuditAction = "role_change"
	AuditAccountDelete  AuditAction = "account_delete"
)

// AuditEvent records one security-relevant event on an account.
type AuditEvent struct {
	UserID    string
	Action    AuditAction
	Success   bool
	Detail    string
	Timestamp time.Time
}
