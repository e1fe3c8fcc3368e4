package control

import (
	"strings"

	"github.com/core-tools/hsu-sjw/pkg/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var typeToCode = map[errors.ErrorType]codes.Code{
	errors.ErrorTypeValidation:     codes.InvalidArgument,
	errors.ErrorTypeNotFound:       codes.NotFound,
	errors.ErrorTypeBusy:           codes.Aborted,
	errors.ErrorTypeAdapterFailure: codes.Internal,
	errors.ErrorTypeTimeout:        codes.DeadlineExceeded,
	errors.ErrorTypeTransport:      codes.ResourceExhausted,
	errors.ErrorTypeIO:             codes.Unavailable,
	errors.ErrorTypeInternal:       codes.Internal,
	errors.ErrorTypeCancelled:      codes.Canceled,
}

// toStatus converts a domain error into a gRPC status. The message keeps
// the "<type>: " prefix so clients can tell Internal causes apart.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	code, ok := typeToCode[errors.TypeOf(err)]
	if !ok {
		code = codes.Unknown
	}
	return status.Error(code, err.Error())
}

// fromStatus converts a gRPC status back into a typed domain error.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return errors.NewTransportError("rpc failed", err)
	}

	errorType := typeFromMessage(st.Message())
	if errorType == "" {
		errorType = typeFromCode(st.Code())
	}
	message := strings.TrimPrefix(st.Message(), string(errorType)+": ")
	return errors.NewDomainError(errorType, message, nil).WithContext("grpc_code", st.Code().String())
}

func typeFromMessage(message string) errors.ErrorType {
	prefix, _, found := strings.Cut(message, ": ")
	if !found {
		return ""
	}
	candidate := errors.ErrorType(prefix)
	if _, known := typeToCode[candidate]; known {
		return candidate
	}
	return ""
}

func typeFromCode(code codes.Code) errors.ErrorType {
	switch code {
	case codes.InvalidArgument:
		return errors.ErrorTypeValidation
	case codes.NotFound:
		return errors.ErrorTypeNotFound
	case codes.Aborted:
		return errors.ErrorTypeBusy
	case codes.DeadlineExceeded:
		return errors.ErrorTypeTimeout
	case codes.ResourceExhausted, codes.Unavailable:
		return errors.ErrorTypeTransport
	case codes.Canceled:
		return errors.ErrorTypeCancelled
	case codes.Internal:
		return errors.ErrorTypeAdapterFailure
	default:
		return errors.ErrorTypeInternal
	}
}
