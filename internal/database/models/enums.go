package models

// TenantTypeName classifies a team and drives vocabulary and feature gating
type TenantTypeName string

const (
	TenantTypeFarm    TenantTypeName = "Farm"
	TenantTypePPE     TenantTypeName = "PPE"
	TenantTypeDefault TenantTypeName = "Default"
)

// LicenseStatus is the catalog status of a license
type LicenseStatus string

const (
	LicenseStatusPending   LicenseStatus = "PENDING"
	LicenseStatusActive    LicenseStatus = "ACTIVE"
	LicenseStatusExpired   LicenseStatus = "EXPIRED"
	LicenseStatusSuspended LicenseStatus = "SUSPENDED"
)

// RenewalPeriod is how long one purchase of a license lasts
type RenewalPeriod string

const (
	RenewalPeriodMonthly   RenewalPeriod = "MONTHLY"
	RenewalPeriodQuarterly RenewalPeriod = "QUARTERLY"
	RenewalPeriodYearly    RenewalPeriod = "YEARLY"
	RenewalPeriodLifetime  RenewalPeriod = "LIFETIME"
)

// Severity of a governed record
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Resource is a team-scoped thing a role can be granted actions on
type Resource string

const (
	ResourceTeam             Resource = "TEAM"
	ResourceTeamMember       Resource = "TEAM_MEMBER"
	ResourceTeamRole         Resource = "TEAM_ROLE"
	ResourceTeamInvitation   Resource = "TEAM_INVITATION"
	ResourceTeamWebhook      Resource = "TEAM_WEBHOOK"
	ResourceLocation         Resource = "LOCATION"
	ResourceLicense          Resource = "LICENSE"
	ResourceComplianceStatus Resource = "COMPLIANCE_STATUS"
	ResourceComplianceAlert  Resource = "COMPLIANCE_ALERT"
)

// Action is one of the CRUD verbs a role can be granted on a resource
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// AllResources lists the fixed resource vocabulary
func AllResources() []Resource {
	return []Resource{
		ResourceTeam,
		ResourceTeamMember,
		ResourceTeamRole,
		ResourceTeamInvitation,
		ResourceTeamWebhook,
		ResourceLocation,
		ResourceLicense,
		ResourceComplianceStatus,
		ResourceComplianceAlert,
	}
}

// AllActions lists the fixed action vocabulary
func AllActions() []Action {
	return []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
}

// IsValid checks if the TenantTypeName is known
func (t TenantTypeName) IsValid() bool {
	switch t {
	case TenantTypeFarm, TenantTypePPE, TenantTypeDefault:
		return true
	}
	return false
}

// IsValid checks if the LicenseStatus is valid
func (s LicenseStatus) IsValid() bool {
	switch s {
	case LicenseStatusPending, LicenseStatusActive, LicenseStatusExpired, LicenseStatusSuspended:
		return true
	}
	return false
}

// IsValid checks if the RenewalPeriod is valid
func (p RenewalPeriod) IsValid() bool {
	switch p {
	case RenewalPeriodMonthly, RenewalPeriodQuarterly, RenewalPeriodYearly, RenewalPeriodLifetime:
		return true
	}
	return false
}

// IsValid checks if the Severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// IsValid checks if the Resource belongs to the fixed vocabulary
func (r Resource) IsValid() bool {
	for _, known := range AllResources() {
		if r == known {
			return true
		}
	}
	return false
}

// IsValid checks if the Action is one of create, read, update, delete
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete:
		return true
	}
	return false
}
