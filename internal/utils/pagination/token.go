package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// EncodeToken creates a base64 encoded keyset token from the transaction date
// and entry id of the last item on a page.
func EncodeToken(transactionDate time.Time, entryID string) string {
	tokenStr := fmt.Sprintf("%s|%s", transactionDate.Format(dateFormat), entryID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	transactionDate, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	return transactionDate, parts[1], nil
}

// After reports whether (date, id) sorts strictly after the cursor in
// descending (date, id) order, i.e. belongs on a later page.
func After(date time.Time, id string, cursorDate time.Time, cursorID string) bool {
	if !date.Equal(cursorDate) {
		return date.Before(cursorDate)
	}
	return id < cursorID
}
