package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Window is one labeled blocking window of a schedule.
type Window struct {
	Label   string
	Enabled bool
}

// Schedule keeps windows in insertion order. It is encoded as a JSON object
// ({"6:00 PM-9:00 AM": true, ...}) and the key order survives a round trip.
type Schedule []Window

// First returns the window that status evaluation looks at.
func (s Schedule) First() (Window, bool) {
	if len(s) == 0 {
		return Window{}, false
	}
	return s[0], true
}

func (s Schedule) Lookup(label string) (bool, bool) {
	for _, w := range s {
		if w.Label == label {
			return w.Enabled, true
		}
	}
	return false, false
}

// Set updates the flag of an existing label or appends a new window.
func (s Schedule) Set(label string, enabled bool) Schedule {
	for i := range s {
		if s[i].Label == label {
			s[i].Enabled = enabled
			return s
		}
	}
	return append(s, Window{Label: label, Enabled: enabled})
}

func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	copy(out, s)
	return out
}

func (s Schedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, w := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(w.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		if w.Enabled {
			buf.WriteString(":true")
		} else {
			buf.WriteString(":false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("schedule must be a JSON object")
	}
	out := Schedule{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected schedule key %v", tok)
		}
		var enabled bool
		if err = dec.Decode(&enabled); err != nil {
			return fmt.Errorf("schedule window %q: %w", label, err)
		}
		out = out.Set(label, enabled)
	}
	if _, err = dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}
