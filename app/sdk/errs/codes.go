package errs

import "net/http"

// The set of error codes that are used by the application.
var (
	// OK indicates the operation was successful.
	OK = ErrCode{value: 0}

	// NoContent indicates the operation was successful with no content.
	NoContent = ErrCode{value: 1}

	// Canceled indicates the operation was canceled (typically by the caller).
	Canceled = ErrCode{value: 2}

	// Unknown error.
	Unknown = ErrCode{value: 3}

	// InvalidArgument indicates client specified an invalid argument.
	InvalidArgument = ErrCode{value: 4}

	// DeadlineExceeded means operation expired before completion.
	DeadlineExceeded = ErrCode{value: 5}

	// NotFound means some requested entity was not found, including rows
	// owned by another tenant.
	NotFound = ErrCode{value: 6}

	// AlreadyExists means an attempt to create an entity failed because one
	// already exists.
	AlreadyExists = ErrCode{value: 7}

	// PermissionDenied indicates the caller does not have permission to
	// execute the specified operation.
	PermissionDenied = ErrCode{value: 8}

	// ResourceExhausted indicates some resource has been exhausted.
	ResourceExhausted = ErrCode{value: 9}

	// FailedPrecondition indicates operation was rejected because the
	// system is not in a state required for the operation's execution.
	FailedPrecondition = ErrCode{value: 10}

	// Aborted indicates the operation was aborted because of a conflict,
	// such as a duplicate key or an overlapping booking.
	Aborted = ErrCode{value: 11}

	// OutOfRange means operation was attempted past the valid range.
	OutOfRange = ErrCode{value: 12}

	// Unimplemented indicates operation is not implemented or not
	// supported/enabled in this service.
	Unimplemented = ErrCode{value: 13}

	// Internal errors. The message is replaced before reaching the client.
	Internal = ErrCode{value: 14}

	// InternalOnlyLog errors are logged and never shown to the client.
	InternalOnlyLog = ErrCode{value: 15}

	// Unavailable indicates the service is currently unavailable.
	Unavailable = ErrCode{value: 16}

	// DataLoss indicates unrecoverable data loss or corruption.
	DataLoss = ErrCode{value: 17}

	// Unauthenticated indicates the request does not have valid
	// authentication credentials for the operation.
	Unauthenticated = ErrCode{value: 18}
)

var codeNumbers = map[string]ErrCode{
	"ok":                  OK,
	"no_content":          NoContent,
	"canceled":            Canceled,
	"unknown":             Unknown,
	"invalid_argument":    InvalidArgument,
	"deadline_exceeded":   DeadlineExceeded,
	"not_found":           NotFound,
	"already_exists":      AlreadyExists,
	"permission_denied":   PermissionDenied,
	"resource_exhausted":  ResourceExhausted,
	"failed_precondition": FailedPrecondition,
	"aborted":             Aborted,
	"out_of_range":        OutOfRange,
	"unimplemented":       Unimplemented,
	"internal":            Internal,
	"internal_only_log":   InternalOnlyLog,
	"unavailable":         Unavailable,
	"data_loss":           DataLoss,
	"unauthenticated":     Unauthenticated,
}

var codeNames map[ErrCode]string

func init() {
	codeNames = make(map[ErrCode]string, len(codeNumbers))
	for k, v := range codeNumbers {
		codeNames[v] = k
	}
}

var httpStatus = map[ErrCode]int{
	OK:                 http.StatusOK,
	NoContent:          http.StatusNoContent,
	Canceled:           http.StatusGatewayTimeout,
	Unknown:            http.StatusInternalServerError,
	InvalidArgument:    http.StatusBadRequest,
	DeadlineExceeded:   http.StatusGatewayTimeout,
	NotFound:           http.StatusNotFound,
	AlreadyExists:      http.StatusConflict,
	PermissionDenied:   http.StatusForbidden,
	ResourceExhausted:  http.StatusTooManyRequests,
	FailedPrecondition: http.StatusBadRequest,
	Aborted:            http.StatusConflict,
	OutOfRange:         http.StatusBadRequest,
	Unimplemented:      http.StatusNotImplemented,
	Internal:           http.StatusInternalServerError,
	InternalOnlyLog:    http.StatusInternalServerError,
	Unavailable:        http.StatusServiceUnavailable,
	DataLoss:           http.StatusInternalServerError,
	Unauthenticated:    http.StatusUnauthorized,
}
