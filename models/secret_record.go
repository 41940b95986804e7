package models

import "time"

// SecretRecord is a structured record whose sensitive fields are stored as
// cipher envelopes. The same type carries both plaintext (before encryption /
// after decryption) and encrypted (as persisted) representations; which one
// a given value holds depends on where in the pipeline it is observed.
type SecretRecord struct {
	// ID is the server-assigned record identifier.
	ID string `json:"id,omitempty"`

	// Email is an optional contact e-mail. Empty string means absent;
	// absent fields are never encrypted and stay absent after decryption.
	Email string `json:"email,omitempty"`

	// Phone is an optional contact phone number. Same presence rules as Email.
	Phone string `json:"phone,omitempty"`

	// PersonalInfo is an optional free-form structured value. It is
	// serialized to canonical JSON before encryption and parsed back after
	// decryption. nil means absent. After a failed decryption the raw stored
	// string is kept here unchanged, so the value may also be a string.
	PersonalInfo any `json:"personalInfo,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// EncryptedRecord is the persisted shape of a [SecretRecord]: every sensitive
// field replaced by its cipher envelope (or by whatever raw value was stored
// for records that predate encryption). Empty string means the field is
// absent.
type EncryptedRecord struct {
	ID           string
	Email        string
	Phone        string
	PersonalInfo string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
