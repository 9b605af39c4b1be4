package snapshot

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/akyairhashvil/zenith/internal/models"
)

// FragmentKey prefixes the payload inside a share link's fragment.
const FragmentKey = "data="

// ShareURL builds "<base>#data=<payload>". Any fragment already on base is
// dropped and a trailing slash is added unless the path names a page.
func ShareURL(base string, goals []models.Goal) (string, error) {
	payload := Encode(goals)
	if payload == "" {
		return "", errors.New("goals cannot be encoded")
	}
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", fmt.Errorf("parse share base: %w", err)
	}
	u.Fragment = ""
	u.RawFragment = ""
	if !strings.HasSuffix(u.Path, "/") && !strings.HasSuffix(u.Path, ".html") {
		u.Path += "/"
	}
	return u.String() + "#" + FragmentKey + payload, nil
}

// PayloadFromURL extracts the encoded snapshot from a full share link, a bare
// "#data=..." fragment or the payload itself.
func PayloadFromURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, "#"); idx >= 0 {
		s = s[idx+1:]
	}
	if rest, ok := strings.CutPrefix(s, FragmentKey); ok {
		s = rest
	} else if strings.Contains(s, "://") {
		return "", fmt.Errorf("%w: link has no %q fragment", ErrDecodeFailed, FragmentKey)
	}
	if s == "" {
		return "", fmt.Errorf("%w: empty payload", ErrDecodeFailed)
	}
	return s, nil
}

// DecodeURL is PayloadFromURL followed by Decode.
func DecodeURL(raw string, now time.Time) ([]models.Goal, error) {
	payload, err := PayloadFromURL(raw)
	if err != nil {
		return nil, err
	}
	return Decode(payload, now)
}
