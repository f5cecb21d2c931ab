package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherChain   WeatherProviderChain
	WeatherCache   WeatherCache
	WeatherMetrics WeatherMetrics

	// Notifications
	SubscriptionSource SubscriptionSource
	EmailProvider      EmailProvider

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
}
