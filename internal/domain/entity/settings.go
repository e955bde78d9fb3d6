package entity

// AppSettings is the process-wide settings singleton edited by admins.
type AppSettings struct {
	RegistrationOpen          bool `bson:"registration_open" json:"registrationOpen"`
	MaintenanceMode           bool `bson:"maintenance_mode" json:"maintenanceMode"`
	AllowUserSupplierCreation bool `bson:"allow_user_supplier_creation" json:"allowUserSupplierCreation"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		RegistrationOpen:          true,
		MaintenanceMode:           false,
		AllowUserSupplierCreation: true,
	}
}

// DashboardStats are the counters shown on the admin overview.
type DashboardStats struct {
	Suppliers         int `json:"suppliers"`
	VerifiedSuppliers int `json:"verifiedSuppliers"`
	Users             int `json:"users"`
	BannedUsers       int `json:"bannedUsers"`
	Categories        int `json:"categories"`
}
