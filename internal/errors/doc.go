// Package errors is the coded error type shared by every layer of spellforge.
//
// An *Error carries a Code, a message that is safe to show a player, the wrapped
// cause and optional meta. Codes map one to one onto gRPC status codes, and meta
// rides along as a structpb.Struct detail.
//
// # Creating and wrapping
//
//	err := errors.NotFound("encounter not found").
//	    WithMeta("encounter_id", encounterID)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get player")
//	}
//
// Wrap keeps the inner code, so a NotFound from redis stays a NotFound after the
// orchestrator adds context. WrapWithCode reclassifies:
//
//	if redis.IsNil(err) {
//	    return errors.WrapWithCode(err, errors.CodeNotFound, "player not found")
//	}
//
// # Checking
//
//	switch {
//	case errors.IsNotFound(err):
//	case errors.IsFailedPrecondition(err):
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("player_id", input.PlayerID, vb)
//	errors.ValidateRange("enemy_count", input.EnemyCount, 1, 3, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// The fields end up in meta under "validation_errors".
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err); clients call errors.FromGRPCError to get
// the code and meta back.
//
// # Codes by layer
//
//   - InvalidArgument: malformed input, checked before touching state
//   - NotFound: unknown player, encounter, spell or item
//   - FailedPrecondition: the request is valid but the game state refuses it
//   - Unavailable: redis or the content generator is down
//   - DataLoss: a stored save no longer decodes
//   - Internal: anything unclassified
package errors
