// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for hackconsole, a manual testing
console for the hackathon management API.

# Running an Action

	hackconsole health
	hackconsole login loginEmail=admin@example.com loginPassword=secret
	hackconsole create-hackathon hTitle="Spring Hack" hDesc="48 hours"
	hackconsole generate-qr qUser=5 qHack=1

Each reported output is printed as "== <outputId>" followed by pretty
JSON. The session (token and user) is kept in the session database, so a
login carries over to later invocations.

# Serve Mode

	hackconsole -p 3319 serve

Starts the console server (see package router). Actions are driven with
POST /actions/{name}.

# Configuration

  - HACKATHON_API_URL (-u): API base URL (default: http://127.0.0.1:8000)
  - DATABASE_TYPE (-t): sqlite, postgres or redis (default: sqlite)
  - DATABASE_URL (-d): session store URL (default: file:hackconsole.db)
  - CONSOLE_HOST (-host): listen address (default: 127.0.0.1)
  - PORT (-p): console server port (default: 3319)
  - CONSOLE_ALLOWED_ORIGIN (-origin): cross-origin page allowed to call the server
  - LOG_LEVEL (-log-level): debug, info, warn, error
  - CONFIG_PATH (-c): optional YAML file

A .env file in the working directory is loaded first.

# Architecture

  - handlers: console actions
  - client: API calls with an explicit Result
  - session: persisted token and user
  - db: sqlite, postgres and redis key/value backends
  - panel: which console regions are visible for a session
  - report: terminal and in-memory output reporters
  - router, middleware: console server
  - auth: bearer header and token masking
  - models: request types and numeric coercion
  - cliparse: configuration parsing
*/
package main
