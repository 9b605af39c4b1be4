// Package snapshot converts a goal list to and from the compact text carried in
// a share link's URL fragment.
//
// The payload is JSON with single-letter keys, UTF-8 encoded, then base64 with
// the URL-safe alphabet and no padding. Descriptions and creation times are not
// carried; decoded goals get an empty description and the decode time.
package snapshot

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akyairhashvil/zenith/internal/models"
)

// Version is written as the first field of every payload.
const Version = 1

var (
	ErrDecodeFailed       = errors.New("snapshot decode failed")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

type wireLog struct {
	D string  `json:"d"`
	V float64 `json:"v"`
}

type wireGoal struct {
	I  string    `json:"i"`
	T  string    `json:"t"`
	C  string    `json:"c"`
	K  string    `json:"k"`
	Tg float64   `json:"tg"`
	A  float64   `json:"a"`
	U  string    `json:"u"`
	L  []wireLog `json:"l"`
}

type envelope struct {
	V int        `json:"v"`
	G []wireGoal `json:"g"`
}

// Encode returns the payload for goals, or "" if they cannot be serialized
// (for example a NaN target).
func Encode(goals []models.Goal) string {
	env := envelope{V: Version, G: make([]wireGoal, 0, len(goals))}
	for _, g := range goals {
		logs := make([]wireLog, 0, len(g.Logs))
		for _, l := range g.Logs {
			logs = append(logs, wireLog{D: l.Date, V: l.Value})
		}
		env.G = append(env.G, wireGoal{
			I:  g.ID,
			T:  g.Title,
			C:  g.Category.Label(),
			K:  g.KRNumber,
			Tg: g.Target,
			A:  g.Actual,
			U:  g.Unit,
			L:  logs,
		})
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode reverses Encode. Payloads written before versioning (a bare JSON
// array) are accepted. Every failure wraps ErrDecodeFailed. Decoded goals
// always carry a non-nil Logs slice, so a nil Logs comes back empty.
func Decode(text string, now time.Time) ([]models.Goal, error) {
	raw, err := decodeBase64(text)
	if err != nil {
		return nil, fail(err)
	}
	if !utf8.Valid(raw) {
		return nil, fail(errors.New("payload is not valid UTF-8"))
	}
	wire, err := parse(raw)
	if err != nil {
		return nil, fail(err)
	}
	goals := make([]models.Goal, 0, len(wire))
	for i, w := range wire {
		g, err := w.expand(now)
		if err != nil {
			return nil, fail(fmt.Errorf("goal %d: %w", i, err))
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func fail(err error) error {
	return fmt.Errorf("%w: %w", ErrDecodeFailed, err)
}

func decodeBase64(text string) ([]byte, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, errors.New("empty payload")
	}
	if mod := len(s) % 4; mod > 0 {
		s += strings.Repeat("=", 4-mod)
	}
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	return base64.StdEncoding.DecodeString(s)
}

func parse(raw []byte) ([]wireGoal, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var legacy []wireGoal
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return nil, err
		}
		return legacy, nil
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	if env.V != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.V)
	}
	return env.G, nil
}

func (w wireGoal) expand(now time.Time) (models.Goal, error) {
	if w.I == "" {
		return models.Goal{}, errors.New("missing id")
	}
	cat, err := models.ParseCategory(w.C)
	if err != nil {
		return models.Goal{}, err
	}
	logs := make([]models.DailyLog, 0, len(w.L))
	for _, l := range w.L {
		logs = append(logs, models.DailyLog{Date: l.D, Value: l.V})
	}
	return models.Goal{
		ID:          w.I,
		Title:       w.T,
		Category:    cat,
		KRNumber:    w.K,
		Target:      w.Tg,
		Actual:      w.A,
		Unit:        w.U,
		Description: "",
		Logs:        logs,
		CreatedAt:   now,
	}, nil
}
