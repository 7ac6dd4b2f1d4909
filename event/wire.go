package event

import (
	"encoding/json"
	"strings"

	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// EncodingHeader selects the body encoding of a posted event.
// Absent or "json" means JSON; "msgpack" means a msgpack-encoded Envelope.
const (
	EncodingHeader  = "X-Event-Encoding"
	EncodingJSON    = "json"
	EncodingMsgPack = "msgpack"
)

// Envelope is the wire form of an event posted by a rendered binding.
// Target names the element inside the component that raised it.
type Envelope struct {
	Target   string   `json:"target" msgpack:"target"`
	Kind     string   `json:"kind" msgpack:"kind"`
	Value    string   `json:"value,omitempty" msgpack:"value,omitempty"`
	Multiple bool     `json:"multiple,omitempty" msgpack:"multiple,omitempty"`
	Options  []Option `json:"options,omitempty" msgpack:"options,omitempty"`
	X        int      `json:"x,omitempty" msgpack:"x,omitempty"`
	Y        int      `json:"y,omitempty" msgpack:"y,omitempty"`
	Button   int      `json:"button,omitempty" msgpack:"button,omitempty"`
	Alt      bool     `json:"alt,omitempty" msgpack:"alt,omitempty"`
	Ctrl     bool     `json:"ctrl,omitempty" msgpack:"ctrl,omitempty"`
	Shift    bool     `json:"shift,omitempty" msgpack:"shift,omitempty"`
	Meta     bool     `json:"meta,omitempty" msgpack:"meta,omitempty"`
}

// Event converts the envelope into the Event union.
func (e Envelope) Event() Event {
	switch Kind(e.Kind) {
	case KindInput:
		return Input{Value: e.Value}
	case KindSelect:
		return Select{Value: e.Value, Multiple: e.Multiple, Options: e.Options}
	case KindClick:
		return Click{X: e.X, Y: e.Y, Button: e.Button, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift, Meta: e.Meta}
	default:
		return Unknown{Name: e.Kind}
	}
}

// Wrap builds the envelope for ev raised by target.
func Wrap(target string, ev Event) Envelope {
	env := Envelope{Target: target, Kind: string(ev.Kind())}
	switch e := ev.(type) {
	case Input:
		env.Value = e.Value
	case Select:
		env.Value, env.Multiple, env.Options = e.Value, e.Multiple, e.Options
	case Click:
		env.X, env.Y, env.Button = e.X, e.Y, e.Button
		env.Alt, env.Ctrl, env.Shift, env.Meta = e.Alt, e.Ctrl, e.Shift, e.Meta
	case Unknown:
	}
	return env
}

// Decode parses a posted event body in the given encoding.
func Decode(body []byte, encoding string) (Envelope, error) {
	var env Envelope

	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingJSON:
		if err := json.Unmarshal(body, &env); err != nil {
			return env, serr.Wrap(err, "failed to decode json event")
		}
	case EncodingMsgPack:
		if err := msgpack.Unmarshal(body, &env); err != nil {
			return env, serr.Wrap(err, "failed to decode msgpack event")
		}
	default:
		return env, serr.New("unsupported event encoding " + encoding)
	}

	if env.Target == "" {
		return env, serr.New("event target is required")
	}
	return env, nil
}

// Encode is the inverse of Decode.
func Encode(env Envelope, encoding string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingJSON:
		b, err := json.Marshal(env)
		return b, serr.Wrap(err, "failed to encode json event")
	case EncodingMsgPack:
		b, err := msgpack.Marshal(env)
		return b, serr.Wrap(err, "failed to encode msgpack event")
	}
	return nil, serr.New("unsupported event encoding " + encoding)
}
