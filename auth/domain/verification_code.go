package domain

import "time"

// CodeTTL is how long a verification code stays valid after issuance.
const CodeTTL = 20 * time.Minute

// VerificationCode is a single-use email verification code. There is at most
// one active code per email; a resend overwrites the previous one.
type VerificationCode struct {
	Email     string    `firestore:"email" json:"email"`
	Code      string    `firestore:"code" json:"-"`
	ExpiresAt time.Time `firestore:"expiresAt" json:"expiresAt"`
	Used      bool      `firestore:"used" json:"used"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// Expired reports whether the code is no longer valid at the given time.
func (c *VerificationCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
