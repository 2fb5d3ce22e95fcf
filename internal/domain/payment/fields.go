package payment

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Text is a string leaf of the PIX reply. A number or boolean in its place is
// kept in literal form; an object or array leaves it empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[', 'n':
	default:
		*t = Text(data)
	}
	return nil
}

func (t Text) String() string { return string(t) }

// Int is an integer leaf of the PIX reply. It also accepts a quoted number,
// and truncates a fractional one. Anything else leaves it zero.
type Int int

func (n *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	literal := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		literal = strings.TrimSpace(s)
	}

	if v, err := strconv.Atoi(literal); err == nil {
		*n = Int(v)
		return nil
	}
	if f, err := strconv.ParseFloat(literal, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		*n = Int(math.Trunc(f))
	}
	return nil
}

// decodeObject fills v only when data holds a JSON object.
func decodeObject(data []byte, v any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (r *Response) UnmarshalJSON(data []byte) error {
	type plain Response
	return decodeObject(data, (*plain)(r))
}

func (c *CobData) UnmarshalJSON(data []byte) error {
	type plain CobData
	return decodeObject(data, (*plain)(c))
}

func (c *Calendario) UnmarshalJSON(data []byte) error {
	type plain Calendario
	return decodeObject(data, (*plain)(c))
}

func (l *Loc) UnmarshalJSON(data []byte) error {
	type plain Loc
	return decodeObject(data, (*plain)(l))
}

func (v *Valor) UnmarshalJSON(data []byte) error {
	type plain Valor
	return decodeObject(data, (*plain)(v))
}
