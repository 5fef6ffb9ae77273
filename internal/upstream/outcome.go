package upstream

import (
	"l4d2stats/internal/errcode"
)

type Kind int

const (
	KindCode Kind = iota
	KindJSON
	KindMarkup
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindJSON:
		return "json"
	case KindMarkup:
		return "markup"
	}
	return "invalid"
}

// Outcome is the single result of an upstream call. Exactly one of Code,
// Payload or Markup is meaningful, as selected by Kind.
type Outcome struct {
	Kind Kind

	// KindCode
	Code errcode.Code
	// Raw holds the undecoded body for errcode.Undecodable.
	Raw string
	// Err is the transport failure behind errcode.Unreachable.
	Err error

	// KindJSON
	Payload any

	// KindMarkup
	Markup []byte
}

func codeOutcome(code errcode.Code) Outcome {
	return Outcome{Kind: KindCode, Code: code}
}

// AsError converts a KindCode outcome into the matching *errcode.Error, it
// returns nil for every other kind.
func (o Outcome) AsError() error {
	if o.Kind != KindCode {
		return nil
	}
	err := errcode.FromCode(o.Code)
	err.Err = o.Err
	if o.Code == errcode.Undecodable {
		err.Payload = o.Raw
	}
	return err
}

// Markup routes an outcome to a markup parser: codes are terminal errors,
// markup is returned as-is and any other payload is an empty result.
func Markup(o Outcome) ([]byte, error) {
	switch o.Kind {
	case KindCode:
		return nil, o.AsError()
	case KindMarkup:
		return o.Markup, nil
	}
	return nil, unexpectedPayload(o)
}

// JSON routes an outcome to a JSON consumer.
func JSON(o Outcome) (any, error) {
	switch o.Kind {
	case KindCode:
		return nil, o.AsError()
	case KindJSON:
		return o.Payload, nil
	}
	return nil, unexpectedPayload(o)
}

func unexpectedPayload(o Outcome) error {
	return &errcode.Error{
		Code:  errcode.EmptyResult,
		Kind:  errcode.KindUnknown,
		Stage: "payload:" + o.Kind.String(),
	}
}
