package browser

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"time"
)

// macEpochOffsetSeconds is the number of seconds between the Unix epoch
// (1970-01-01) and the Mac absolute-time epoch (2001-01-01) used by
// Safari cookie timestamps.
const macEpochOffsetSeconds int64 = 978_307_200

var binaryCookiesMagic = []byte("cook")

// readBinaryCookies reads cookies from a Safari Cookies.binarycookies
// file for the given domain set. Expired cookies are skipped at read time.
//
// Layout: a "cook" magic header, a big-endian page count and page size
// table, then pages. Each page holds little-endian cookie offsets and
// records; record fields (flags, string offsets, expiry) are little-endian
// and strings are NUL-terminated.
func readBinaryCookies(path string, domains []string) ([]Cookie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open Safari cookie store: %w", err)
	}
	if len(data) < 8 || !bytes.Equal(data[:4], binaryCookiesMagic) {
		return nil, fmt.Errorf("not a binarycookies file: %s", path)
	}

	pageCount := binary.BigEndian.Uint32(data[4:8])
	tableEnd := 8 + int(pageCount)*4
	if tableEnd > len(data) {
		return nil, fmt.Errorf("truncated binarycookies page table in %s", path)
	}

	now := time.Now()
	var cookies []Cookie

	offset := tableEnd
	for i := 0; i < int(pageCount); i++ {
		size := int(binary.BigEndian.Uint32(data[8+i*4 : 12+i*4]))
		if offset+size > len(data) {
			return nil, fmt.Errorf("truncated binarycookies page %d in %s", i, path)
		}
		page := data[offset : offset+size]
		offset += size

		parsed, err := parseCookiePage(page)
		if err != nil {
			return nil, fmt.Errorf("bad binarycookies page %d in %s: %w", i, path, err)
		}
		for _, c := range parsed {
			if !c.Expiry.IsZero() && c.Expiry.Before(now) {
				continue
			}
			if !domainInSet(c.Domain, domains) {
				continue
			}
			cookies = append(cookies, c)
		}
	}

	return cookies, nil
}

// parseCookiePage decodes one binarycookies page into cookie records.
func parseCookiePage(page []byte) ([]Cookie, error) {
	if len(page) < 8 {
		return nil, fmt.Errorf("page too small")
	}
	// Page header is the fixed tag 0x00000100.
	if binary.BigEndian.Uint32(page[:4]) != 0x00000100 {
		return nil, fmt.Errorf("bad page header")
	}
	count := int(binary.LittleEndian.Uint32(page[4:8]))
	if 8+count*4 > len(page) {
		return nil, fmt.Errorf("truncated cookie offset table")
	}

	var cookies []Cookie
	for i := 0; i < count; i++ {
		start := int(binary.LittleEndian.Uint32(page[8+i*4 : 12+i*4]))
		c, err := parseCookieRecord(page, start)
		if err != nil {
			return nil, err
		}
		cookies = append(cookies, c)
	}
	return cookies, nil
}

// parseCookieRecord decodes a single cookie record starting at the given
// offset within a page.
func parseCookieRecord(page []byte, start int) (Cookie, error) {
	const headerLen = 56
	if start < 0 || start+headerLen > len(page) {
		return Cookie{}, fmt.Errorf("cookie record out of bounds")
	}
	rec := page[start:]

	size := int(binary.LittleEndian.Uint32(rec[0:4]))
	if size < headerLen || start+size > len(page) {
		return Cookie{}, fmt.Errorf("cookie record size out of bounds")
	}
	rec = rec[:size]

	flags := binary.LittleEndian.Uint32(rec[8:12])
	domainOff := int(binary.LittleEndian.Uint32(rec[16:20]))
	nameOff := int(binary.LittleEndian.Uint32(rec[20:24]))
	pathOff := int(binary.LittleEndian.Uint32(rec[24:28]))
	valueOff := int(binary.LittleEndian.Uint32(rec[28:32]))

	// Expiry is a little-endian float64 of seconds since 2001-01-01.
	expirySecs := int64(math.Float64frombits(binary.LittleEndian.Uint64(rec[40:48])))

	domain, err := cString(rec, domainOff)
	if err != nil {
		return Cookie{}, err
	}
	name, err := cString(rec, nameOff)
	if err != nil {
		return Cookie{}, err
	}
	path, err := cString(rec, pathOff)
	if err != nil {
		return Cookie{}, err
	}
	value, err := cString(rec, valueOff)
	if err != nil {
		return Cookie{}, err
	}

	c := Cookie{
		Name:     name,
		Value:    value,
		Domain:   domain,
		Path:     path,
		Secure:   flags&0x1 != 0,
		HttpOnly: flags&0x4 != 0,
	}
	if expirySecs > 0 {
		c.Expiry = time.Unix(expirySecs+macEpochOffsetSeconds, 0)
	}
	return c, nil
}

// cString reads a NUL-terminated string starting at off within rec.
func cString(rec []byte, off int) (string, error) {
	if off < 0 || off >= len(rec) {
		return "", fmt.Errorf("string offset out of bounds")
	}
	end := bytes.IndexByte(rec[off:], 0)
	if end < 0 {
		return "", fmt.Errorf("unterminated string in cookie record")
	}
	return string(rec[off : off+end]), nil
}
