package domain

import "time"

// AccessToken is a bearer credential attached to API calls.
type AccessToken struct {
	// Value is the bearer token.
	Value string `json:"access_token"`
	// Type is typically "Bearer".
	Type string `json:"token_type"`
	// Expiry is when the token expires. Zero for caller-supplied tokens.
	Expiry time.Time `json:"expiry,omitempty"`
	// Source records which credential produced the token.
	Source CredentialSource `json:"source"`
}

// IsExpired returns true if the token has expired.
func (t *AccessToken) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry)
}

// AuthorizationHeader returns the value for the Authorization header.
func (t *AccessToken) AuthorizationHeader() string {
	typ := t.Type
	if typ == "" {
		typ = "Bearer"
	}
	return typ + " " + t.Value
}

// CredentialReport summarises a credential check.
type CredentialReport struct {
	// Source is the credential source that produced the token.
	Source CredentialSource `json:"source"`
	// ProjectID is the project the check ran against.
	ProjectID string `json:"project_id"`
	// ProjectName is the display name returned by Resource Manager.
	ProjectName string `json:"project_name,omitempty"`
	// ProjectState is the lifecycle state returned by Resource Manager.
	ProjectState string `json:"project_state,omitempty"`
	// StorageServiceAccount is the project's Cloud Storage service agent.
	StorageServiceAccount string `json:"storage_service_account,omitempty"`
	// TokenExpiry is when the checked token expires.
	TokenExpiry time.Time `json:"token_expiry,omitempty"`
}
