// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config and the arguments left after the flags:

	cfg, rest, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - BaseURL: Hackathon API base URL (default: http://127.0.0.1:8000)
  - DatabaseType: sqlite, postgres or redis (default: sqlite)
  - DatabaseURL: Session store URL (default for sqlite: file:hackconsole.db)
  - Host: Console server listen address (default: 127.0.0.1)
  - Port: Console server port in serve mode (default: 3319)
  - AllowedOrigin: Cross-origin page allowed to call the server (default: none)
  - LogLevel: debug, info, warn or error (default: info)
  - ConfigPath: Optional YAML file

# CLI Flags

	-u          API base URL
	-t          Database type
	-d          Database URL
	-host       Console server listen address
	-p          Console server port
	-origin     Allowed cross-origin page
	-log-level  Log level
	-c          YAML config file

# Environment Variables

	HACKATHON_API_URL → -u
	DATABASE_TYPE     → -t
	DATABASE_URL      → -d
	CONSOLE_HOST      → -host
	PORT              → -p
	CONSOLE_ALLOWED_ORIGIN → -origin
	LOG_LEVEL         → -log-level
	CONFIG_PATH       → -c

CLI flags take precedence over environment variables, which take
precedence over the config file. The file is read with cleanenv and uses
the keys base_url, database_type, database_url, host, port,
allowed_origin and log_level.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing for postgres or redis
  - the database type is not one of sqlite, postgres, redis
  - the log level or port cannot be parsed

# Fields

ParseFields turns the action arguments into form values:

	fields, err := cliparse.ParseFields([]string{"loginEmail=a@b.com", "loginPassword=x"})
*/
package cliparse
