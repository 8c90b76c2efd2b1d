package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	deployerEnvKey     = "DEPLOYER_ADDRESS"
	deployerPassEnvKey = "DEPLOYER_PASSPHRASE"
	opTimeoutEnvKey    = "OP_TIMEOUT_SECONDS"
	defaultOpTimeout   = 10 * time.Second
)

type App struct {
	Port               string
	DBConnectionURL    string
	JWTSecret          string
	DeployerAddress    string
	DeployerPassphrase string
	OpTimeout          time.Duration
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	deployer, ok := os.LookupEnv(deployerEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, deployerEnvKey)
	}

	deployerPass, ok := os.LookupEnv(deployerPassEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, deployerPassEnvKey)
	}

	opTimeout := defaultOpTimeout
	if raw, ok := os.LookupEnv(opTimeoutEnvKey); ok {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", opTimeoutEnvKey, err)
		}
		opTimeout = time.Duration(seconds) * time.Second
	}

	return App{
		Port:               port,
		DBConnectionURL:    dbConn,
		JWTSecret:          jwtSecret,
		DeployerAddress:    deployer,
		DeployerPassphrase: deployerPass,
		OpTimeout:          opTimeout,
	}, nil
}
