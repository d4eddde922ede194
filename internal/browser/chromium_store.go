package browser

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// chromeEpochOffsetSeconds is the number of seconds between the Windows NT
// epoch (1601-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
const chromeEpochOffsetSeconds int64 = 11_644_473_600

// chromeToUnix converts a Chrome timestamp (microseconds since 1601-01-01)
// to a Unix timestamp (seconds since 1970-01-01).
func chromeToUnix(chromeUSec int64) int64 {
	return (chromeUSec / 1_000_000) - chromeEpochOffsetSeconds
}

// readChromiumStore reads cookies from a Chromium-family Cookies SQLite
// file (Chrome, Edge) for the given domain set. Only unencrypted cookies
// (where value != '') are returned; encrypted values are skipped, since
// store decryption is out of scope. The dbPath should be a path to a
// copied (not in-use) SQLite database.
func readChromiumStore(dbPath string, domains []string) ([]Cookie, error) {
	dsn := fmt.Sprintf("file:%s?immutable=1", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open Chromium cookie database: %w", err)
	}
	defer db.Close()

	variants := domainVariants(domains)
	if len(variants) == 0 {
		return nil, nil
	}
	placeholders := strings.Repeat("?,", len(variants))
	placeholders = placeholders[:len(placeholders)-1]

	nowChrome := (time.Now().Unix() + chromeEpochOffsetSeconds) * 1_000_000
	args := make([]any, 0, len(variants)+1)
	for _, v := range variants {
		args = append(args, v)
	}
	args = append(args, nowChrome)

	rows, err := db.Query(`
        SELECT name, value, host_key, path, expires_utc, is_secure, is_httponly
        FROM cookies
        WHERE host_key IN (`+placeholders+`)
          AND value != ''
          AND expires_utc > ?
        ORDER BY path DESC, name ASC
    `, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query Chromium cookies: %w", err)
	}
	defer rows.Close()

	var cookies []Cookie
	for rows.Next() {
		var (
			name, value, hostKey, path string
			expiresUTC                 int64
			isSecure, isHttpOnly       int
		)
		if err := rows.Scan(&name, &value, &hostKey, &path, &expiresUTC, &isSecure, &isHttpOnly); err != nil {
			return nil, fmt.Errorf("failed to scan Chromium cookie row: %w", err)
		}
		cookies = append(cookies, Cookie{
			Name:     name,
			Value:    value,
			Domain:   hostKey,
			Path:     path,
			Expiry:   time.Unix(chromeToUnix(expiresUTC), 0),
			Secure:   isSecure != 0,
			HttpOnly: isHttpOnly != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate Chromium cookie rows: %w", err)
	}

	return cookies, nil
}
