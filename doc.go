// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollsite server.

Pollsite is a small polling web application: visitors browse recently
published questions, vote on a question's choices, and view results.
Questions and choices are managed through a JSON admin API.

# Starting the Server

The server runs on sqlite out of the box:

	ADMIN_KEY_SALT=... go run main.go

Or against PostgreSQL:

	go run main.go -t postgres -d "postgres://..." -admin-salt ...

# Configuration

Required settings:

  - ADMIN_KEY_SALT (--admin-salt): Secret the admin API key is derived from

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string (default: file:pollsite.db)

A .env file in the working directory is honored.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (public pages, admin CRUD)
  - templates: embedded html/template pages
  - router: Route definitions using Go 1.22+ routing
  - middleware: request logging, CORS, JSON helpers
  - models: domain and request/response types
  - auth: admin key derivation and validation
  - db: schema creation (sqlite and postgres dialects)
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
