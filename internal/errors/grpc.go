package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCCode maps calendar codes to gRPC status codes for the API layer.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK

	// InvalidArgument - the request referenced something malformed
	case CodeNotAllied:
		return codes.InvalidArgument

	// NotFound - the referenced entity is absent
	case CodeEventInvalid,
		CodePlayerNotFound:
		return codes.NotFound

	// PermissionDenied - requester may not perform the operation
	case CodePermissions,
		CodeNotInvited,
		CodeNotInGroup,
		CodeIgnoringYou,
		CodeRestrictedAccount:
		return codes.PermissionDenied

	// FailedPrecondition - state does not allow the operation
	case CodeAlreadyInvited,
		CodeEventPassed,
		CodeEventLocked,
		CodeDeleteCreatorFailed,
		CodeSystemDisabled:
		return codes.FailedPrecondition

	// ResourceExhausted - a protocol limit was reached
	case CodeGroupEventsExceeded,
		CodeEventsExceeded,
		CodeSelfInvitesExceeded,
		CodeOtherInvitesExceeded,
		CodeInvitesExceeded:
		return codes.ResourceExhausted
	}
	return codes.Internal
}

// HandleError converts calendar errors to gRPC status for client
// responses. Unknown errors surface as Internal without leaking detail.
func HandleError(err error) error {
	if err == nil {
		return nil
	}
	var calErr *Error
	if errors.As(err, &calErr) {
		return status.Error(calErr.Code.GRPCCode(), calErr.Error())
	}
	return status.Error(codes.Internal, "an unexpected error occurred")
}

// GetCode extracts the calendar code from any error, CodeInternal if the
// error is not a calendar error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsCode checks whether the error carries the given calendar code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
