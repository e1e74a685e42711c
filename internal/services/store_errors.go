package services

import (
	"context"

	"github.com/yungbote/erp-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/erp-backend/internal/domain/aggregates"
	"github.com/yungbote/erp-backend/internal/platform/ctxutil"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

// storeFailure classifies err, logs it once with request fields and returns the coded error.
func storeFailure(ctx context.Context, log *logger.Logger, op string, err error) error {
	mapped := aggregates.MapError(op, err)
	fields := append(ctxutil.LogFields(ctx), "op", op, "code", string(domainagg.CodeOf(mapped)), "error", err)
	switch domainagg.CodeOf(mapped) {
	case domainagg.CodePersistenceConflict, domainagg.CodeNotFound:
		log.Warn("store write rejected", fields...)
	default:
		log.Error("store operation failed", fields...)
	}
	return mapped
}
