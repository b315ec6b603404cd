package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Validation failures are
// attached as a google.protobuf.Struct detail mapping each field to its messages.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codeOf(err).GRPCCode(), err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if fields := GetFieldErrors(err); len(fields) > 0 {
		if detail, convErr := fieldsToStruct(fields); convErr == nil {
			if withDetails, detailErr := st.WithDetails(detail); detailErr == nil {
				st = withDetails
			}
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error, restoring field
// failures from a Struct detail
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if s, ok := detail.(*structpb.Struct); ok {
			customErr.WithMeta(MetaValidationErrors, structToFields(s))
			break
		}
	}

	return customErr
}

func fieldsToStruct(fields map[string][]string) (*structpb.Struct, error) {
	raw := make(map[string]interface{}, len(fields))
	for field, messages := range fields {
		list := make([]interface{}, len(messages))
		for i, m := range messages {
			list[i] = m
		}
		raw[field] = list
	}
	return structpb.NewStruct(raw)
}

func structToFields(s *structpb.Struct) map[string][]string {
	fields := make(map[string][]string, len(s.GetFields()))
	for field, value := range s.GetFields() {
		for _, item := range value.GetListValue().GetValues() {
			fields[field] = append(fields[field], item.GetStringValue())
		}
	}
	return fields
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
