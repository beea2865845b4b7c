package server

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/marketlens/marketlens/internal/common"
)

// userIDKey is the metadata key the upstream auth proxy sets after
// verifying the session.
const userIDKey = "x-user-id"

// callerID extracts the authenticated user id from request metadata.
func callerID(ctx context.Context) (uuid.UUID, error) {
	if id := common.UserIDFromContext(ctx); id != uuid.Nil {
		return id, nil
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, common.PermissionDeniedError("missing request metadata")
	}
	vals := md.Get(userIDKey)
	if len(vals) == 0 {
		return uuid.Nil, common.PermissionDeniedError("missing " + userIDKey + " metadata")
	}
	id, err := uuid.Parse(vals[0])
	if err != nil {
		return uuid.Nil, common.PermissionDeniedError(userIDKey + " must be a UUID")
	}
	return id, nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError(field + " must be a UUID")
	}
	return id, nil
}
