package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const detailsMetaKey = "meta"

// ToGRPCError converts err into a status error for a handler to return. Status
// errors pass through untouched. Meta on an *Error is attached as a
// structpb.Struct detail so clients can read validation fields and ids back.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var e *Error
	if !As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if len(e.Meta) == 0 {
		return st.Err()
	}

	details, detailErr := errorDetails(e)
	if detailErr != nil {
		return st.Err()
	}
	if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
		st = withDetails
	}
	return st.Err()
}

// FromGRPCError turns a status error received by a client back into an *Error.
// Non-status errors are returned as they are.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}
	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		if meta, ok := details.AsMap()[detailsMetaKey].(map[string]interface{}); ok {
			out.Meta = meta
			break
		}
	}
	return out
}

// errorDetails packs the error into a structpb.Struct. Meta goes through JSON first
// so typed slices and maps become plain lists and objects.
func errorDetails(e *Error) (*structpb.Struct, error) {
	raw, err := json.Marshal(map[string]interface{}{
		"code":         string(e.Code),
		"message":      e.Message,
		detailsMetaKey: e.Meta,
	})
	if err != nil {
		return nil, err
	}

	details := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, details); err != nil {
		return nil, err
	}
	return details, nil
}
