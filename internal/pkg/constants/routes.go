package constants

// Static route constants
const (
	LoginRoute     = "/auth/login"
	RegisterRoute  = "/auth/register"
	LogoutRoute    = "/auth/logout"
	DashboardRoute = "/dashboard"
	AlbumsRoute    = "/albums"
	ImagesRoute    = "/images"
)
