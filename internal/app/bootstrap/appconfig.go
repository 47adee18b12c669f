// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and request timeouts. AppConfig is where
// everything specific to the portfolio API lives: the MongoDB
// connection, pool sizing, and the browser origin allowed by CORS.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm in the pool

	// ClientURL is the browser origin allowed to call the API
	// (the portfolio frontend, e.g. http://localhost:5173).
	ClientURL string

	// BaseURL is this service's externally visible URL, used in logs
	// and absolute links.
	BaseURL string
}
