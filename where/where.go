// Package where resolves the filesystem locations the application reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tmdb-cli/tmdb/constant"
	"github.com/tmdb-cli/tmdb/filesystem"
)

// EnvConfigPath is the environment variable used to override the default configuration directory.
const EnvConfigPath = "TMDB_CONFIG_PATH"

// EnvFileName is the optional dotenv file read from the working directory.
const EnvFileName = ".env.local"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the application configuration directory.
// It follows os.UserConfigDir (XDG_CONFIG_HOME on Linux) unless TMDB_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory holding diagnostic log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Credentials resolves the plaintext file holding the provider API key.
func Credentials() string {
	return filepath.Join(Config(), "tmdb-cli-config.json")
}

// EnvFile resolves the dotenv file in the current working directory.
func EnvFile() string {
	return EnvFileName
}
