package domain

import "time"

// OrganizationType classifies the member organization.
type OrganizationType string

const (
	OrganizationTypeMGA      OrganizationType = "MGA"
	OrganizationTypeCarrier  OrganizationType = "carrier"
	OrganizationTypeProvider OrganizationType = "provider"
	OrganizationTypeBroker   OrganizationType = "broker"
	OrganizationTypeVendor   OrganizationType = "vendor"
	OrganizationTypeOther    OrganizationType = "other"
)

// AccountStatus is the onboarding state of a member account.
type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "pending"
	AccountStatusApproved AccountStatus = "approved"
	AccountStatusAdmin    AccountStatus = "admin"
)

// IsValid reports whether s is one of the closed set of account statuses.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusPending, AccountStatusApproved, AccountStatusAdmin:
		return true
	}

	return false
}

// Account is a member organization account. Created on signup, mutated by
// admin actions and payment webhooks, never hard-deleted in normal flow.
type Account struct {
	ID               string           `firestore:"-" json:"id"`
	Email            string           `firestore:"email" json:"email"`
	OrganizationName string           `firestore:"organizationName" json:"organizationName"`
	OrganizationType OrganizationType `firestore:"organizationType" json:"organizationType"`
	Status           AccountStatus    `firestore:"status" json:"status"`
	PaymentStatus    string           `firestore:"paymentStatus" json:"paymentStatus"`
	EmailVerified    bool             `firestore:"emailVerified" json:"emailVerified"`
	CreatedAt        time.Time        `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt        time.Time        `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

// AccountFilter narrows account listings. Empty slices do not filter; the
// listing always excludes accounts without an email.
type AccountFilter struct {
	OrganizationTypes []OrganizationType
	AccountStatuses   []AccountStatus
}

// Matches reports whether the account passes the filter.
func (f AccountFilter) Matches(account *Account) bool {
	if account.Email == "" {
		return false
	}

	if len(f.OrganizationTypes) > 0 && !containsOrganizationType(f.OrganizationTypes, account.OrganizationType) {
		return false
	}

	if len(f.AccountStatuses) > 0 && !containsAccountStatus(f.AccountStatuses, account.Status) {
		return false
	}

	return true
}

func containsOrganizationType(types []OrganizationType, t OrganizationType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}

	return false
}

func containsAccountStatus(statuses []AccountStatus, s AccountStatus) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}

	return false
}
