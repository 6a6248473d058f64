// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via
github.com/joho/godotenv); variables already present in the
environment are not overwritten.

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: Database connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminKeySalt: Secret the admin API key is derived from (required)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	--admin-salt Admin key salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → --admin-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_KEY_SALT must be provided
  - DATABASE_URL must be provided when DATABASE_TYPE is postgres
    (sqlite defaults to file:pollsite.db)
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
