package store

const (
	upsertToken = `
		INSERT INTO credentials (id, token, saved_at)
		VALUES (1, $1, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			token    = excluded.token,
			saved_at = CURRENT_TIMESTAMP;`

	getToken = `
		SELECT token
		FROM credentials
		WHERE id = 1;`

	deleteToken = `
		DELETE FROM credentials
		WHERE id = 1;`
)
