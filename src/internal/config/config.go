package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=payment_orchestrator_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultListenAddr = ":8080"
const defaultFXServiceURL = "http://localhost:9040/convert-currency"
const defaultPNSServiceURL = "http://localhost:9050"

type Config struct {
	DatabaseDSN   string
	MigrationsDir string
	ListenAddr    string
	FXServiceURL  string
	PNSServiceURL string
}

func Load() (Config, error) {
	// A missing .env file is fine; system env vars still apply.
	_ = godotenv.Load()

	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	fxServiceURL := strings.TrimSpace(os.Getenv("FX_SERVICE_URL"))
	if fxServiceURL == "" {
		fxServiceURL = defaultFXServiceURL
	}

	pnsServiceURL := strings.TrimSpace(os.Getenv("PNS_SERVICE_URL"))
	if pnsServiceURL == "" {
		pnsServiceURL = defaultPNSServiceURL
	}

	return Config{
		DatabaseDSN:   normalizeConnectionString(conn),
		MigrationsDir: filepath.Join("src", "migrations"),
		ListenAddr:    listenAddr,
		FXServiceURL:  fxServiceURL,
		PNSServiceURL: pnsServiceURL,
	}, nil
}

// normalizeConnectionString accepts both libpq keyword DSNs and the
// semicolon-separated form used by the ops tooling, normalizing the latter
// into libpq keywords.
func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
