package freight

// Upstream paths, preserved verbatim for compatibility with the deployed
// backend.
const (
	loginPath  = "/api/origin/auth/login"
	logoutPath = "/api/origin/auth/logout"

	originCreatePath = "/api/origin/forms/create"
	originUserPath   = "/api/origin/forms/user"
	originAllPath    = "/api/origin/forms/all"
	originFormPath   = "/api/origin/forms/"

	railCreatePath = "/api/railfreight/forms/create"
	railUserPath   = "/api/railfreight/forms/user"
	railAllPath    = "/api/railfreight/forms/all"
	railFormPath   = "/api/railfreight/forms/"
)
