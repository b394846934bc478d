package storage

const (
	queryCreateKVTable = `
		CREATE TABLE IF NOT EXISTS disha_kv (
			key        TEXT PRIMARY KEY,
			value      BYTEA NOT NULL,
			expires_at TIMESTAMPTZ NULL
		)`

	queryGetValue = `
		SELECT value
		FROM disha_kv
		WHERE key = :key
		  AND (expires_at IS NULL OR expires_at > :now)`

	queryUpsertValue = `
		INSERT INTO disha_kv (key, value, expires_at)
		VALUES (:key, :value, :expires_at)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`

	queryDeleteValues = `
		DELETE FROM disha_kv
		WHERE key = ANY(:keys)`
)
