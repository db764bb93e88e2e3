package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS          = "" // e.g. "example.com,example2.com"
	MYSQL_DSN            = "" // MySQL will be used if this is set
	SQLITE_FILE          = "" // SQLite will be used if MYSQL_DSN is not configured and this is set
	BIND_ADDRESS         = "0.0.0.0:3000"
	DEBUG_MODE           = true
	JWT_SECRET           = "location_based_service" // override in any real deployment
	TOKEN_LIFETIME_HOURS = 2
	BCRYPT_COST          = 10
	SEED_PLACES          = 1000 // number of random places seeded into an empty DB, 0 to disable
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("JWT_SECRET", &JWT_SECRET)
	readEnvInt("TOKEN_LIFETIME_HOURS", &TOKEN_LIFETIME_HOURS)
	readEnvInt("BCRYPT_COST", &BCRYPT_COST)
	readEnvInt("SEED_PLACES", &SEED_PLACES)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
