// Package session holds the per-surface login state: LoggedOut until a
// directory record matches the submitted credentials, LoggedIn after. Tokens
// are synthesized from the record identity and a timestamp; they are display
// tokens, not credentials the directory verifies.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jinalkathiriya/Healthcare/models"
)

var (
	// ErrInvalidCredentials means no directory record matched the submitted
	// email and password.
	ErrInvalidCredentials = errors.New("session: invalid email or password")
	// ErrEmailTaken means a sign-up hit an email that already exists.
	ErrEmailTaken = errors.New("session: email already exists")
	// ErrInvalidToken means a persisted token did not parse.
	ErrInvalidToken = errors.New("session: invalid token format")
)

// synthesizeToken builds the "token-<id>-<millis>" login token the patient
// portal persists.
func synthesizeToken(id models.FlexID) string {
	return fmt.Sprintf("token-%s-%d", id, time.Now().UnixMilli())
}

// parseToken recovers the record id from a synthesized token. The id itself
// may contain dashes, so the timestamp is split off the tail.
func parseToken(token string) (models.FlexID, error) {
	rest, ok := strings.CutPrefix(token, "token-")
	if !ok {
		return "", ErrInvalidToken
	}
	i := strings.LastIndex(rest, "-")
	if i <= 0 {
		return "", ErrInvalidToken
	}
	id, ts := rest[:i], rest[i+1:]
	if _, err := strconv.ParseInt(ts, 10, 64); err != nil {
		return "", ErrInvalidToken
	}
	return models.FlexID(id), nil
}
