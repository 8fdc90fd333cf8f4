package registry

// Extension registry keys (cmd, cron, api) stored in GlobalRegistry.
const (
	KeyRegistryCmd    = "registry:cmd"
	KeyRegistryCron   = "registry:cron"
	KeyRegistryAPI    = "registry:api"
	KeyRegistryRoutes = "registry:routes"
)
