package domain

// User is the authenticated identity returned by GET /auth/me.
// The record is server-defined; only the fields the client reads are mapped.
type User struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

// MFAEnrollment is the payload returned by POST /auth/mfa/setup.
// QRCode is an otpauth URI or image data URL for authenticator apps;
// Secret is the manual-entry fallback.
type MFAEnrollment struct {
	QRCode string `json:"qrCode"`
	Secret string `json:"secret"`
}
