package clierr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const unknownErrorLine = "Unknown error"

// FormatBody renders an API error payload as display lines. body may be
// nil, a string, []byte or json.RawMessage holding the raw response, an
// already-decoded mapping, or any other value. Maps with other key or value
// types are re-decoded into map[string]any first. FormatBody never panics
// and always returns at least one line.
func FormatBody(body any) []string {
	switch b := body.(type) {
	case nil:
		return []string{unknownErrorLine}
	case string:
		return formatRaw(b)
	case []byte:
		return formatRaw(string(b))
	case json.RawMessage:
		return formatRaw(string(b))
	case map[string]any:
		return formatMapping(b)
	default:
		if m, ok := asMapping(b); ok {
			return formatMapping(m)
		}
		return []string{fmt.Sprint(b)}
	}
}

// asMapping converts any map kind into map[string]any through JSON.
func asMapping(v any) (map[string]any, bool) {
	if reflect.ValueOf(v).Kind() != reflect.Map {
		return nil, false
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

// formatRaw handles an opaque response body. Bodies that are not JSON
// objects are shown verbatim.
func formatRaw(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{unknownErrorLine}
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []string{raw}
	}
	if m, ok := parsed.(map[string]any); ok {
		return formatMapping(m)
	}
	return []string{raw}
}

func formatMapping(m map[string]any) []string {
	if lines := detailLines(m["detail"]); len(lines) > 0 {
		return lines
	}

	if errVal, ok := m["error"]; ok {
		if detail, ok := m["detail"].(string); ok {
			return []string{fmt.Sprintf("%s: %s", stringify(errVal), detail)}
		}
		return []string{stringify(errVal)}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return []string{fmt.Sprint(m)}
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

// detailLines renders a validation list of {"loc": [...], "msg": "..."}
// entries. Entries carrying neither a path nor a message are skipped.
func detailLines(detail any) []string {
	entries, ok := detail.([]any)
	if !ok {
		return nil
	}

	var lines []string
	for _, entry := range entries {
		e, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		path := joinLoc(e["loc"])
		var msg string
		if v, ok := e["msg"]; ok && v != nil {
			msg = stringify(v)
		}

		switch {
		case path != "" && msg != "":
			lines = append(lines, fmt.Sprintf("  %s: %s", path, msg))
		case msg != "":
			lines = append(lines, "  "+msg)
		}
	}
	return lines
}

// joinLoc turns a location path such as ["body", "prices", 0] into
// "body.prices.0".
func joinLoc(loc any) string {
	switch l := loc.(type) {
	case string:
		return l
	case []any:
		parts := make([]string, 0, len(l))
		for _, p := range l {
			parts = append(parts, stringify(p))
		}
		return strings.Join(parts, ".")
	case []string:
		return strings.Join(l, ".")
	default:
		return ""
	}
}

// stringify renders a decoded JSON value for display. Numbers never use
// exponent notation.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return "null"
	default:
		return fmt.Sprint(t)
	}
}
