// Package errcode is the process-wide error vocabulary shared by the scrapers and
// their callers. Scrapers only ever return codes, turning a code into something a
// chat user can read is done by whoever renders the reply.
package errcode

import (
	"errors"
	"fmt"
)

type Code int

const (
	Unreachable    Code = -1
	UIDHint        Code = -51
	CookieHint     Code = -511
	Undecodable    Code = -999
	NotBound       Code = 302
	EmptyResult    Code = 401
	NotFound       Code = 404
	BadParams      Code = 500
	BadPlatform    Code = 501
	ServerBroken   Code = 523
	SessionExpired Code = 4001
	TokenInvalid   Code = 8000102
)

var messages = map[Code]string{
	Unreachable:    "the stats server could not be reached, please try again later",
	UIDHint:        "you have not bound a UID yet, bind one with the bind command first",
	CookieHint:     "you have not added a usable cookie yet, add one first",
	Undecodable:    "the stats server returned a response that could not be decoded",
	NotBound:       "please bind a UID first",
	EmptyResult:    "the result is empty, please check the search terms",
	NotFound:       "the requested page was not found",
	BadParams:      "bad request parameters, please provide valid parameters",
	BadPlatform:    "the stored platform is invalid, switch to a valid platform",
	ServerBroken:   "the game stats server is broken, please contact the server admin",
	SessionExpired: "4001 - login has expired, please add the token again",
	TokenInvalid:   "8000102 - auth check failed, the token is expired or incorrect",
}

// Message renders the user-facing message for a code.
func Message(code Code) string {
	msg, ok := messages[code]
	if ok {
		return msg
	}
	return fmt.Sprintf("unknown error, code=%d (the player's privacy settings may not allow lookups)", int(code))
}

// Known lists every code that has a dedicated message.
func Known() []Code {
	return []Code{
		Unreachable, UIDHint, CookieHint, Undecodable,
		NotBound, EmptyResult, NotFound, BadParams,
		BadPlatform, ServerBroken, SessionExpired, TokenInvalid,
	}
}

type Kind int

const (
	KindUnknown Kind = iota
	KindTransport
	KindUpstreamData
	KindStructuralParse
	KindCaller
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUpstreamData:
		return "upstream_data"
	case KindStructuralParse:
		return "structural_parse"
	case KindCaller:
		return "caller"
	default:
		return "unknown"
	}
}

// Error is the only error type returned by the scraping core.
type Error struct {
	Code Code
	Kind Kind
	// Stage names where a structural parse failed, e.g. "tables" or "survivor.tank_kill".
	Stage string
	// Payload holds the undecoded upstream text for Undecodable errors.
	Payload string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s error %d", e.Kind, int(e.Code))
	if e.Stage != "" {
		msg += fmt.Sprintf(" at %s", e.Stage)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Transport(code Code, err error) *Error {
	return &Error{Code: code, Kind: KindTransport, Err: err}
}

func Upstream(code Code) *Error {
	return &Error{Code: code, Kind: KindUpstreamData}
}

func Parse(code Code, stage string, err error) *Error {
	return &Error{Code: code, Kind: KindStructuralParse, Stage: stage, Err: err}
}

func Unknown(code Code, payload string) *Error {
	return &Error{Code: code, Kind: KindUnknown, Payload: payload}
}

func Caller(code Code, err error) *Error {
	return &Error{Code: code, Kind: KindCaller, Err: err}
}

// FromCode builds the error for a bare code returned by the HTTP layer.
func FromCode(code Code) *Error {
	switch code {
	case NotFound, Unreachable:
		return Transport(code, nil)
	case Undecodable:
		return Unknown(code, "")
	default:
		return Upstream(code)
	}
}

// CodeOf extracts the code carried by err, ok is false for foreign errors.
func CodeOf(err error) (Code, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target.Code, true
	}
	return 0, false
}

// KindOf extracts the kind carried by err, foreign errors are KindUnknown.
func KindOf(err error) Kind {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind
	}
	return KindUnknown
}

// Describe renders err for a user.
func Describe(err error) string {
	code, ok := CodeOf(err)
	if !ok {
		return fmt.Sprintf("unknown error: %s", err.Error())
	}
	return Message(code)
}
