package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error. The values mirror the gRPC status codes the
// combat service reports.
type Code string

// Error codes used by the service
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
	CodeDataLoss:           codes.DataLoss,
}

var fromGRPCCodes = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(grpcCodes))
	for c, g := range grpcCodes {
		m[g] = c
	}
	return m
}()

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the matching gRPC status code, codes.Unknown for anything
// outside the table
func (c Code) GRPCCode() codes.Code {
	if g, ok := grpcCodes[c]; ok {
		return g
	}
	return codes.Unknown
}

func codeFromGRPC(g codes.Code) Code {
	if c, ok := fromGRPCCodes[g]; ok {
		return c
	}
	return CodeInternal
}

// CodeFromHTTPStatus classifies a failed upstream HTTP response. Client errors
// mean we sent something the upstream rejects; rate limiting and server errors
// are worth retrying later.
func CodeFromHTTPStatus(status int) Code {
	switch {
	case status >= 200 && status < 300:
		return CodeOK
	case status == http.StatusTooManyRequests:
		return CodeUnavailable
	case status >= 400 && status < 500:
		return CodeInvalidArgument
	default:
		return CodeUnavailable
	}
}
