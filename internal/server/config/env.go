package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/careerpath/internal/flagx"
)

const (
	EnvDatabaseDSN  = "CAREERPATH_DATABASE_DSN"
	EnvEndpointAddr = "CAREERPATH_ENDPOINT_ADDR"
)

// parseEnv overlays values from the dotenv file and the process environment;
// the process environment wins. A missing dotenv file is not an error.
func parseEnv(cfg *Config) {
	fileVars, err := godotenv.Read(flagx.EnvFileFlags())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := lookupEnv(fileVars, EnvDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := lookupEnv(fileVars, EnvEndpointAddr); v != "" {
		cfg.EndpointAddr = v
	}
}

func lookupEnv(fileVars map[string]string, key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fileVars[key]
}
