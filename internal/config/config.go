package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string

	UploadDir        string
	UploadBaseURL    string
	UploadQuotaBytes int64

	OperatorWorkers int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine, the compose setup injects real env vars.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		UploadDir:        "./uploads",
		UploadBaseURL:    "/uploads",
		UploadQuotaBytes: 512 * 1024 * 1024,
		OperatorWorkers:  4,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envUploadDir := os.Getenv("UPLOAD_DIR")
	envUploadBaseURL := os.Getenv("UPLOAD_BASE_URL")
	envUploadQuotaBytes := os.Getenv("UPLOAD_QUOTA_BYTES")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envUploadDir) != 0 {
		env.UploadDir = envUploadDir
	}

	if len(envUploadBaseURL) != 0 {
		env.UploadBaseURL = envUploadBaseURL
	}

	if len(envUploadQuotaBytes) != 0 {
		quota, err := strconv.ParseInt(envUploadQuotaBytes, 10, 64)
		if err != nil {
			return nil, err
		}
		env.UploadQuotaBytes = quota
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	return &env, nil
}

// ConnectionString builds the lib/pq DSN used by both the server and the
// migration runner.
func (c *Config) ConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
