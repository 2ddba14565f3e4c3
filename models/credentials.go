package models

import "time"

// Credentials links a LINE user to a Toggl Track account.
// One record exists per LINE user; registering again overwrites the
// previous record.
//
// The Toggl API token is never stored in plaintext: APITokenCipher holds
// the AES-GCM ciphertext and KeySalt the per-record salt used to derive
// the encryption key. The plaintext token lives only in APIToken and only
// in memory, after the crypto service has unsealed the record.
type Credentials struct {
	// LineUserID is the LINE platform user identifier ("U..." string).
	// Primary key at the persistence layer.
	LineUserID string `json:"line_user_id"`

	// UserName is the display name supplied at registration.
	// Truncated to 50 characters.
	UserName string `json:"user_name"`

	// APIToken is the plaintext Toggl API token. Never persisted and never
	// serialized; populated only after decryption.
	APIToken string `json:"-"`

	// APITokenCipher is the encrypted Toggl API token as stored in the
	// database (base64-encoded AES-GCM blob, nonce prepended).
	APITokenCipher string `json:"-"`

	// KeySalt is the per-record salt for key derivation, base64-encoded.
	KeySalt string `json:"-"`

	// WorkspaceID is the Toggl workspace the user tracks time in.
	// Kept as a string because Toggl accepts it in both path and payload
	// positions; validated to be numeric at registration.
	WorkspaceID string `json:"workspace_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Credentials model.
func (c Credentials) TableName() string {
	return "credentials"
}
