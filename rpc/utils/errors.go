package utils

// Error codes returned by the JSON-RPC façade.
const (
	ErrInvalidParamsCode = -32602
	ErrInvalidTxCode     = -32000
	ErrInternalCode      = -32603
)

// Error is a JSON-RPC error carrying its own code and optional data.
type Error struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) ErrorCode() int { return e.Code }

func (e *Error) ErrorData() interface{} { return e.Data }

func ErrInvalidParams(message string) *Error {
	return &Error{
		Code:    ErrInvalidParamsCode,
		Message: message,
	}
}

// ErrInvalidTx reports a transaction rejected by the execution engine. The
// reason is repeated as error data.
func ErrInvalidTx(reason string) *Error {
	return &Error{
		Code:    ErrInvalidTxCode,
		Message: "invalid transaction: " + reason,
		Data:    reason,
	}
}

func ErrInternal(message string) *Error {
	return &Error{
		Code:    ErrInternalCode,
		Message: message,
	}
}
