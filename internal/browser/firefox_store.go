package browser

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// readFirefoxStore reads cookies from a Firefox cookies.sqlite file for
// the given domain set. The dbPath should be a path to a copied (not
// in-use) SQLite database. Expired cookies are skipped at read time.
func readFirefoxStore(dbPath string, domains []string) ([]Cookie, error) {
	dsn := fmt.Sprintf("file:%s?immutable=1", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open Firefox cookie database: %w", err)
	}
	defer db.Close()

	variants := domainVariants(domains)
	if len(variants) == 0 {
		return nil, nil
	}
	placeholders := strings.Repeat("?,", len(variants))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(variants)+1)
	for _, v := range variants {
		args = append(args, v)
	}
	args = append(args, time.Now().Unix())

	rows, err := db.Query(`
        SELECT name, value, host, path, expiry, isSecure, isHttpOnly
        FROM moz_cookies
        WHERE host IN (`+placeholders+`)
          AND expiry > ?
        ORDER BY path DESC, name ASC
    `, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query Firefox cookies: %w", err)
	}
	defer rows.Close()

	var cookies []Cookie
	for rows.Next() {
		var (
			name, value, host, path string
			expiry                  int64
			isSecure, isHttpOnly    int
		)
		if err := rows.Scan(&name, &value, &host, &path, &expiry, &isSecure, &isHttpOnly); err != nil {
			return nil, fmt.Errorf("failed to scan Firefox cookie row: %w", err)
		}
		cookies = append(cookies, Cookie{
			Name:     name,
			Value:    value,
			Domain:   host,
			Path:     path,
			Expiry:   time.Unix(expiry, 0),
			Secure:   isSecure != 0,
			HttpOnly: isHttpOnly != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate Firefox cookie rows: %w", err)
	}

	return cookies, nil
}
