package errcode

import "fmt"

// Err is a business error carried through the API layer. Code groups map to
// HTTP statuses in xhttp.
type Err struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Msg)
}

func NewErr(code int, msg string) *Err {
	return &Err{Code: code, Msg: msg}
}

// NewCustomErr wraps an ad-hoc message as a client-facing error.
func NewCustomErr(msg string) *Err {
	return NewErr(CodeCustom, msg)
}

const (
	CodeOK         = 200
	CodeUnexpected = 10001
	CodeInvalid    = 10002
	CodeNotFound   = 10004
	CodeCustom     = 20001
)

var (
	ErrUnexpected    = NewErr(CodeUnexpected, "internal server error")
	ErrInvalidParams = NewErr(CodeInvalid, "invalid params")
	ErrNotFound      = NewErr(CodeNotFound, "record not found")
)

// IsClientErr reports whether the code describes a caller mistake rather
// than a server fault.
func IsClientErr(code int) bool {
	return code == CodeInvalid || code == CodeNotFound || code == CodeCustom
}
