package browser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// readNetscape reads cookies from a Netscape-format cookie text file for
// the given domain set. Lines starting with # are skipped, except
// #HttpOnly_ which sets the HttpOnly flag. Malformed lines are skipped.
func readNetscape(filePath string, domains []string) ([]Cookie, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open Netscape cookie file: %w", err)
	}
	defer f.Close()

	now := time.Now()
	var cookies []Cookie

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		// Skip empty lines
		if line == "" {
			continue
		}

		// Handle #HttpOnly_ prefix
		httpOnly := false
		if strings.HasPrefix(line, "#HttpOnly_") {
			httpOnly = true
			line = line[len("#HttpOnly_"):]
		} else if strings.HasPrefix(line, "#") {
			// Skip comment lines
			continue
		}

		// Split by tab, expect exactly 7 fields
		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			continue
		}

		cookieDomain := fields[0]
		// fields[1] is the subdomain flag, implied by a leading dot
		cookiePath := fields[2]
		secure := strings.EqualFold(fields[3], "TRUE")
		expiry, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			continue
		}
		name := fields[5]
		value := fields[6]

		if !domainInSet(cookieDomain, domains) {
			continue
		}

		// Skip expired cookies (expiry 0 means a session cookie)
		if expiry > 0 && time.Unix(expiry, 0).Before(now) {
			continue
		}

		c := Cookie{
			Name:     name,
			Value:    value,
			Domain:   cookieDomain,
			Path:     cookiePath,
			Secure:   secure,
			HttpOnly: httpOnly,
		}
		if expiry > 0 {
			c.Expiry = time.Unix(expiry, 0)
		}
		cookies = append(cookies, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read Netscape cookie file: %w", err)
	}

	return cookies, nil
}
