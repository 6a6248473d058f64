// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the configured
dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. Two schema constants exist because sqlite and postgres
spell autoincrement primary keys differently; everything else is
shared SQL.

# Tables

  - question: Poll question text and publish timestamp
  - choice: Voting choices with a per-choice vote counter

# Relationships

	question 1──* choice

The choice foreign key uses ON DELETE CASCADE; the admin delete path
also removes choices explicitly inside a transaction so behavior does
not depend on sqlite's foreign_keys pragma.

# Indexes

  - question.pub_date (index page sorts and filters on it)
  - choice.question_id

# Placeholders

All application queries use $N placeholders in strictly increasing
order without reuse, which binds identically under lib/pq and
modernc.org/sqlite.
*/
package db
