package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr  string
	PublicURL string

	DBDriver string
	DBDSN    string

	// CatalogDir holds the per-tool catalog and field-map YAML files.
	CatalogDir string

	// ArchiveBasePath is where raw webhook payloads are written.
	ArchiveBasePath string

	AuthHMACSecret string
	AdminUser      string
	AdminPassHash  string // bcrypt
	// Dev-only convenience login for non-admin users (username == password).
	EnableDevLogin bool

	CORSOrigins []string

	SiteID string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:        addr,
		PublicURL:       os.Getenv("PUBLIC_URL"),
		DBDriver:        envOr("DB_DRIVER", "sqlite"),
		DBDSN:           envOr("DB_DSN", ""),
		CatalogDir:      envOr("CATALOG_DIR", "./catalogs"),
		ArchiveBasePath: envOr("ARCHIVE_BASE_PATH", "./data"),
		AuthHMACSecret:  envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:       envOr("ADMIN_USER", "admin"),
		AdminPassHash:   envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		EnableDevLogin:  envBool("ENABLE_DEV_LOGIN", true),
		CORSOrigins:     csvOr("CORS_ORIGINS", "http://localhost:3000"),
		SiteID:          envOr("SITE_ID", "local"),
	}
}
func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
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
