package auth

// User is the display identity attached to a session. The upstream API does
// not return a profile on login, so this is whatever the client supplied.
type User struct {
	Username string `json:"username"`
}

// Session is the persisted authentication state. Token presence is the sole
// authorization signal; no expiry is tracked client-side.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// Credentials is a locally stored signup record. The upstream API has no
// real signup, so accounts created here exist only on this client.
type Credentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
