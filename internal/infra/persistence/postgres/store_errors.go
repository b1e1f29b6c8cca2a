package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"strings"

	"hotsheet/internal/domain/repository"

	"github.com/pkg/errors"
)

// classifyStoreError tags retryable I/O failures with ErrTransientStore so
// callers can distinguish them from data errors. No retry happens here.
func classifyStoreError(err error, message string) error {
	if isTransientStoreError(err) {
		return errors.Wrap(errors.WithMessage(repository.ErrTransientStore, err.Error()), message)
	}

	return errors.Wrap(err, message)
}

func isTransientStoreError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "too many connections")
}
