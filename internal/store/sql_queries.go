// SPDX-License-Identifier: Apache-2.0

package store

const (
	upsertCredentials = `INSERT INTO credentials (line_user_id, user_name, api_token_cipher, key_salt, workspace_id)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (line_user_id) DO UPDATE SET
        user_name        = excluded.user_name,
        api_token_cipher = excluded.api_token_cipher,
        key_salt         = excluded.key_salt,
        workspace_id     = excluded.workspace_id,
        updated_at       = CURRENT_TIMESTAMP;`

	getCredentials = `SELECT line_user_id, user_name, api_token_cipher, key_salt, workspace_id, created_at, updated_at
    FROM credentials
    WHERE line_user_id = $1;`

	listCredentials = `SELECT line_user_id, user_name, api_token_cipher, key_salt, workspace_id, created_at, updated_at
    FROM credentials
    ORDER BY line_user_id;`

	recordUsage = `INSERT INTO usage_log (line_user_id, count, last_used)
    VALUES ($1, 1, $2)
    ON CONFLICT (line_user_id) DO UPDATE SET
        count     = usage_log.count + 1,
        last_used = $2;`
)
