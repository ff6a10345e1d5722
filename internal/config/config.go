package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/mkhach/grad-seating/internal/model"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  The types reflect how the
// values are used: strings for identifiers and secrets, ints for
// thresholds and TTLs.
type Config struct {
	Env                 string // application environment (e.g. "dev", "prod")
	Port                string // HTTP port to listen on
	StoreBackend        string // "mysql" or "memory"
	DBUser              string // database username
	DBPass              string // database password (optional)
	DBHost              string // database host address
	DBPort              string // database port number
	DBName              string // database name
	JWTSecret           string // secret used to sign admin JWTs
	AccessTTLMin        int    // admin access token time-to-live in minutes
	AdminUser           string // admin login name for the export surface
	AdminPassHash       string // bcrypt hash of the admin password
	NearlyFullThreshold int    // remaining-seats cutoff for the NEARLY_FULL map status
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
// Database variables are only required for the mysql backend.
func Load() Config {
	cfg := Config{
		Env:                 must("APP_ENV"),  // environment (dev/test/prod)
		Port:                must("APP_PORT"), // port to bind the HTTP server
		StoreBackend:        getenv("STORE_BACKEND", "mysql"),
		JWTSecret:           must("JWT_SECRET"), // secret for signing admin JWTs
		AccessTTLMin:        mustInt("ACCESS_TOKEN_TTL_MIN"),
		AdminUser:           must("ADMIN_USER"),
		AdminPassHash:       must("ADMIN_PASSWORD_HASH"), // bcrypt hash, never the plain password
		NearlyFullThreshold: atoi(getenv("NEARLY_FULL_THRESHOLD", strconv.Itoa(model.DefaultNearlyFullThreshold))),
	}
	if cfg.StoreBackend == "mysql" {
		cfg.DBUser = must("DB_USER")      // database user
		cfg.DBPass = os.Getenv("DB_PASS") // database password (empty allowed)
		cfg.DBHost = must("DB_HOST")      // database host
		cfg.DBPort = must("DB_PORT")      // database port
		cfg.DBName = must("DB_NAME")      // database name
	}
	if cfg.NearlyFullThreshold <= 0 {
		cfg.NearlyFullThreshold = model.DefaultNearlyFullThreshold
	}
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
