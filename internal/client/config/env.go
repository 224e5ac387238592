package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/careerpath/internal/flagx"
)

// EnvAPIBaseURL names the only environment-driven setting.
const EnvAPIBaseURL = "CAREERPATH_API_BASE_URL"

// parseEnv overlays values from the dotenv file and the process environment.
// A missing dotenv file is not an error.
func parseEnv(cfg *Config) {
	fileVars, err := godotenv.Read(flagx.EnvFileFlags())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := lookupEnv(fileVars, EnvAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
}

func lookupEnv(fileVars map[string]string, key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return v, true
	}
	v, ok := fileVars[key]
	return v, ok
}
