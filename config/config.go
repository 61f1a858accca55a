package config

import "os"

type Config struct {
	Port         string
	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	RedisAddr    string
	JWTSecret    string
	UploadDir    string
	AllowOrigins []string
}

// Load reads the environment once at startup. Call godotenv.Load first so a
// local .env is honoured.
func Load() Config {
	return Config{
		Port:         getenv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBHost:       getenv("DB_HOST", "localhost"),
		DBPort:       getenv("DB_PORT", "5432"),
		DBUser:       getenv("DB_USER", "postgres"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getenv("DB_NAME", "chinashop"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:    getenv("JWT_SECRET", "dev-secret-change-me"),
		UploadDir:    getenv("UPLOAD_DIR", "./uploads"),
		AllowOrigins: []string{getenv("CORS_ORIGIN", "*")},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
