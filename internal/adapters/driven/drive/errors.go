package drive

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/docq-cli/internal/core/domain"
)

// wrapError converts a Google API error onto the domain error taxonomy.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("drive: %s: %w: %s", op, domain.ErrAuthFailed, gerr.Message)
		case http.StatusTooManyRequests:
			return fmt.Errorf("drive: %s: %w: %s", op, domain.ErrRateLimited, gerr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("drive: %s: %w", op, domain.ErrNotFound)
		default:
			return fmt.Errorf("drive: %s: %w", op, err)
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("drive: %s: %w", op, err)
	}

	return fmt.Errorf("drive: %s: %w: %v", op, domain.ErrNetworkFailure, err)
}
