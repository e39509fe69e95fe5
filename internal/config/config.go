package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string         // Env is the current environment: local, development, production.
	HTTPPort int            // HTTPPort is the port the REST API listens on.
	Postgres PostgresConfig // Postgres holds the database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// MustLoad loads the configuration from environment variables, optionally
// merged over a YAML file pointed to by CONFIG_PATH. It panics if the file
// is set but unreadable.
func MustLoad() *Config {
	vpr := viper.New()

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}
		vpr.SetConfigFile(configPath)
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	vpr.AutomaticEnv()
	bindings := map[string]string{
		"env":               "EMPLOYEE_API_ENV",
		"http_port":         "HTTP_PORT",
		"postgres.host":     "DB_HOST",
		"postgres.port":     "DB_PORT",
		"postgres.user":     "DB_USERNAME",
		"postgres.password": "DB_PASSWORD",
		"postgres.db_name":  "DB_NAME",
	}
	for key, env := range bindings {
		if err := vpr.BindEnv(key, env); err != nil {
			panic("failed to bind env variable: " + err.Error())
		}
	}

	defHTTPPort := 8080
	vpr.SetDefault("env", "local")
	vpr.SetDefault("http_port", defHTTPPort)
	vpr.SetDefault("postgres.port", "5432")

	return &Config{
		Env:      vpr.GetString("env"),
		HTTPPort: vpr.GetInt("http_port"),
		Postgres: PostgresConfig{
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
	}
}
