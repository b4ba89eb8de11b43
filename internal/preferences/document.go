package preferences

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// JSON keys interpreted by this package.
const (
	KeyWhitelistMode = "whitelistMode"
	KeyWhitelist     = "whitelistedItemIds"
	KeyBlocked       = "blockedItemIds"
	KeyF2POnly       = "f2pOnlyMode"
	KeySellOnly      = "sellOnlyMode"
)

// Mode names the active list.
type Mode string

const (
	ModeWhitelist Mode = "whitelist"
	ModeBlacklist Mode = "blacklist"
)

// ParseMode accepts "whitelist" or "blacklist".
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeWhitelist, ModeBlacklist:
		return Mode(value), nil
	default:
		return "", fmt.Errorf("unknown mode %q (want whitelist or blacklist)", value)
	}
}

// Document is a preferences JSON object. Unknown keys are preserved verbatim
// and keys keep the order they were read in.
type Document struct {
	keys   []string
	fields map[string]json.RawMessage
}

// Parse decodes a preferences document. The top level must be an object.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("parse preferences: top-level value must be an object")
	}

	doc := &Document{fields: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse preferences: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("parse preferences: unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("parse preferences: %w", err)
		}
		doc.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse preferences: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("parse preferences: trailing data after object")
	}
	return doc, nil
}

// Marshal renders the document with two-space indentation in key order.
// Values are re-indented but otherwise written as stored.
func (d *Document) Marshal() ([]byte, error) {
	if len(d.keys) == 0 {
		return []byte("{}\n"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, key := range d.keys {
		buf.WriteString("  ")
		if err := writeKey(&buf, key); err != nil {
			return nil, fmt.Errorf("marshal preferences: %w", err)
		}
		buf.WriteString(": ")
		if err := json.Indent(&buf, d.fields[key], "  ", "  "); err != nil {
			return nil, fmt.Errorf("marshal preferences: %s: %w", key, err)
		}
		if i < len(d.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return err
	}
	// Encode terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// set stores raw under key. New keys go to the end; a repeated key keeps its
// first position and takes the later value.
func (d *Document) set(key string, raw json.RawMessage) {
	if _, ok := d.fields[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.fields[key] = raw
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	return slices.Clone(d.keys)
}

// Raw returns the undecoded value stored under key.
func (d *Document) Raw(key string) (json.RawMessage, bool) {
	raw, ok := d.fields[key]
	return raw, ok
}

// Bool reads a boolean key. Missing, null, or non-boolean values read as false.
func (d *Document) Bool(key string) bool {
	raw, ok := d.fields[key]
	if !ok {
		return false
	}
	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}
	return value
}

// WhitelistMode reports whether the whitelist is the active list.
func (d *Document) WhitelistMode() bool {
	return d.Bool(KeyWhitelistMode)
}

// Mode returns the active mode.
func (d *Document) Mode() Mode {
	if d.WhitelistMode() {
		return ModeWhitelist
	}
	return ModeBlacklist
}

// ActiveKey names the list selected by whitelistMode.
func (d *Document) ActiveKey() string {
	if d.WhitelistMode() {
		return KeyWhitelist
	}
	return KeyBlocked
}

// IDs decodes an item ID list. A missing or null key yields an empty list.
func (d *Document) IDs(key string) ([]int, error) {
	raw, ok := d.fields[key]
	if !ok || isNull(raw) {
		return []int{}, nil
	}
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}

// SetIDs replaces an item ID list. nil is stored as an empty array.
func (d *Document) SetIDs(key string, ids []int) {
	if ids == nil {
		ids = []int{}
	}
	// []int always marshals.
	data, _ := json.Marshal(ids)
	d.set(key, data)
}

// ActiveIDs decodes the list selected by whitelistMode.
func (d *Document) ActiveIDs() ([]int, error) {
	return d.IDs(d.ActiveKey())
}

// SetActiveIDs replaces the list selected by whitelistMode.
func (d *Document) SetActiveIDs(ids []int) {
	d.SetIDs(d.ActiveKey(), ids)
}

// SetWhitelistMode switches the active list. Turning the whitelist on for the
// first time initializes an empty whitelist, which blocks every item.
func (d *Document) SetWhitelistMode(on bool) {
	d.set(KeyWhitelistMode, json.RawMessage(strconv.FormatBool(on)))
	if raw, ok := d.fields[KeyWhitelist]; on && (!ok || isNull(raw)) {
		d.SetIDs(KeyWhitelist, nil)
	}
}

// IsFiltered reports whether id is in the active list.
func (d *Document) IsFiltered(id int) (bool, error) {
	ids, err := d.ActiveIDs()
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

// Toggle adds id to the active list or removes every occurrence of it, and
// returns whether the item is filtered afterwards.
func (d *Document) Toggle(id int) (bool, error) {
	ids, err := d.ActiveIDs()
	if err != nil {
		return false, err
	}
	if slices.Contains(ids, id) {
		ids = slices.DeleteFunc(ids, func(v int) bool { return v == id })
		d.SetActiveIDs(ids)
		return false, nil
	}
	d.SetActiveIDs(append(ids, id))
	return true, nil
}

// ResetActive empties the active list. An empty whitelist blocks everything;
// an empty block list allows everything.
func (d *Document) ResetActive() {
	d.SetActiveIDs(nil)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
