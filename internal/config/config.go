package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	// fs | sqlite | postgres
	StorageDriver string
	DataDir       string // for fs
	DBDSN         string // for sqlite/postgres

	CoursesPath string // optional catalog JSON; embedded seed when empty

	AuthHMACSecret string

	AdminUser     string
	AdminPassHash string // bcrypt

	PassScore  int    // minimum quiz score that earns a certificate
	CertIssuer string // printed on every certificate

	CORSOrigins []string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		StorageDriver:  envOr("STORAGE_DRIVER", "fs"),
		DataDir:        envOr("DATA_DIR", "./data"),
		DBDSN:          os.Getenv("DB_DSN"),
		CoursesPath:    os.Getenv("COURSES_PATH"),
		AuthHMACSecret: envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:      envOr("ADMIN_USER", "admin"),
		AdminPassHash:  envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		PassScore:      envInt("PASS_SCORE", 3),
		CertIssuer:     envOr("CERT_ISSUER", "EduPro"),
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
