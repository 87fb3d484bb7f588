package api

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// parsePagination extracts the cursor key and limit from query parameters.
// limit defaults to 50 and is silently capped at 200.
func parsePagination(r *http.Request) (cursorCreatedAt, cursorID string, limit int) {
	cursorCreatedAt, cursorID = decodeCursor(r.URL.Query().Get("cursor"))
	limit = defaultLimit

	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	return cursorCreatedAt, cursorID, limit
}

// encodeCursor packs the last item's sort key (created_at, id) into an
// opaque pagination cursor. Both halves are carried so rows sharing the
// boundary timestamp survive the page break.
func encodeCursor(createdAt, id string) string {
	return base64.URLEncoding.EncodeToString([]byte(createdAt + "|" + id))
}

// decodeCursor unpacks an opaque pagination cursor back into its sort key.
// An empty or invalid cursor decodes to empty strings.
func decodeCursor(cursor string) (createdAt, id string) {
	if cursor == "" {
		return "", ""
	}
	b, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", ""
	}
	createdAt, id, _ = strings.Cut(string(b), "|")
	return createdAt, id
}
