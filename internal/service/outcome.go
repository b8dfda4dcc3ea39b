package service

import (
	"context"

	apperrors "company-services-backend/internal/errors"
	"company-services-backend/internal/logger"
)

// logOutcome records how an operation ended. Rejections by a business rule are
// expected traffic and go to debug; store failures go to error.
func logOutcome(ctx context.Context, op string, fields map[string]interface{}, err error) {
	log := logger.WithContext(ctx).WithField("op", op).WithFields(fields)
	switch {
	case err == nil:
		log.Info("operation completed")
	case apperrors.IsStorage(err):
		log.WithError(err).Error("operation failed")
	default:
		log.WithError(err).Debug("operation rejected")
	}
}
