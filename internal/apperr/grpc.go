package apperr

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code maps an error kind to its gRPC code.
func Code(k Kind) codes.Code {
	switch k {
	case KindNotFound:
		return codes.NotFound
	case KindPreconditionFailed:
		return codes.FailedPrecondition
	case KindInsufficientMaterials, KindInsufficientInventory:
		return codes.ResourceExhausted
	case KindInvalidInput:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// GRPCStatus converts err into a status error. Shortages travel as PreconditionFailure
// violations, one per material. Persistence and unknown errors hide their cause.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && !isAppErr(err) {
		return err
	}

	kind := KindOf(err)
	code := Code(kind)
	msg := err.Error()
	if code == codes.Internal {
		msg = "internal error"
	}

	st := status.New(code, msg)
	shortages := ShortagesOf(err)
	if len(shortages) == 0 {
		return st.Err()
	}

	violations := make([]*errdetails.PreconditionFailure_Violation, len(shortages))
	for i, s := range shortages {
		violations[i] = &errdetails.PreconditionFailure_Violation{
			Type:        "MATERIAL_SHORTAGE",
			Subject:     s.Material,
			Description: formatShortage(s),
		}
	}
	detailed, derr := st.WithDetails(&errdetails.PreconditionFailure{Violations: violations})
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}

func isAppErr(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr)
}
