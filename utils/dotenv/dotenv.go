package dotenv

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// LoadDotEnvs loads the .env files following the convention:
// https://github.com/bkeepers/dotenv#what-other-env-files-can-i-use
// It only needs to be called once in the main function, other code can read
// the environment through os.Getenv during runtime.
func LoadDotEnvs() error {
	loadDotEnvs("")
	return nil
}

const (
	DevEnv  = "dev"
	TestEnv = "test"
	ProdEnv = "prod"
)

// RuntimeEnv returns the runtime environment, defaulting to dev.
func RuntimeEnv() string {
	env := os.Getenv("BLOGMUX_ENV")
	if env == "" {
		env = DevEnv
	}
	return env
}

func loadDotEnvs(rootPath string) {
	env := RuntimeEnv()

	// .env.[runtime_env].local has highest priority, usually contains username
	// and password and other sensitive information
	godotenv.Load(rootPath + ".env." + env + ".local")
	godotenv.Load(rootPath + ".env.local")
	// .env.[runtime_env] usually contains db connection information
	godotenv.Load(rootPath + ".env." + env)
	// .env usually contains shared variables(which might be overwritten by envs above)
	godotenv.Load(rootPath + ".env")
}

// LoadDotEnvsInTests loads the shared .env.test. Have to write this helper
// function due to a known issue of godotenv
// https://github.com/joho/godotenv/issues/43
// Tests run with the package directory as the working directory, so the file
// is located by walking up to the module root.
func LoadDotEnvsInTests() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		path := filepath.Join(dir, ".env.test")
		if _, err := os.Stat(path); err == nil {
			return godotenv.Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return errors.New(".env.test not found in any parent directory")
		}
		dir = parent
	}
}
