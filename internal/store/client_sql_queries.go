// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

package store

const (
	createCacheSchema = `
		CREATE TABLE IF NOT EXISTS session (
			id         INTEGER PRIMARY KEY CHECK (id = 1),
			jid        TEXT NOT NULL,
			token      TEXT NOT NULL,
			saved_at   TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS documents (
			kind       TEXT NOT NULL,
			jid        TEXT NOT NULL,
			body       TEXT NOT NULL,
			fetched_at TIMESTAMP NOT NULL,
			PRIMARY KEY (kind, jid)
		);`

	saveSession = `
		INSERT INTO session (id, jid, token, saved_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			jid = excluded.jid,
			token = excluded.token,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT jid, token
		FROM session
		WHERE id = 1;`

	deleteSession = `DELETE FROM session WHERE id = 1;`

	saveDocument = `
		INSERT INTO documents (kind, jid, body, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (kind, jid) DO UPDATE SET
			body = excluded.body,
			fetched_at = excluded.fetched_at;`

	getDocument = `
		SELECT body, fetched_at
		FROM documents
		WHERE kind = $1 AND jid = $2;`
)
