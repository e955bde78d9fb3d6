package usecasecontract

import "time"

// IConfigProvider exposes the settings use cases need at runtime.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	// GetAllowAdminEmailProvisioning gates the demo rule that turns unknown
	// emails containing "admin" into admin accounts.
	GetAllowAdminEmailProvisioning() bool
}
