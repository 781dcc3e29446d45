package v1

const (
	// BasePath is the prefix every resource route is mounted under
	BasePath = "/api"

	AppName        = "Staffy API"
	AppDescription = "Staffy — A lightweight Human Resource Management System"
	AppVersion     = "1.0.0"
)
