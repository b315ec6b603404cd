// Package errors provides the structured error type shared by the map generator,
// the catalog and both transports.
//
// Errors carry a Code, a user facing Message, an optional Cause and metadata:
//
//	err := errors.NotFoundf("nation %s not found", name).
//	    WithMeta("era", era)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.GetNation(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to resolve nation")
//	}
//
// # Validation
//
// The ValidationBuilder aggregates every failing field so a caller can fix all
// problems in one round-trip:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	vb.FieldError("units[0].catalog_id", &UnknownUnitError{ID: "42"})
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Causes registered with FieldError stay reachable through errors.As on the
// built error.
//
// # Transports
//
// Code.HTTPStatus maps a code for the gin handlers, ToGRPCError converts an
// error for the gRPC service and attaches field failures as a
// google.protobuf.Struct detail.
package errors
