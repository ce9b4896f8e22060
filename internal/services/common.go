package service

import (
	stdErrors "errors"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/bartracker/bar-price-tracker/internal/errors"
	repository "github.com/bartracker/bar-price-tracker/internal/repositories"
)

var strictPolicy = bluemonday.StrictPolicy()

// sanitize strips markup from free text. Entities are decoded again so "Gin & Tonic" is stored as typed.
func sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

func sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}

	v := sanitize(*s)

	return &v
}

func sanitizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := sanitize(s); v != "" {
			out = append(out, v)
		}
	}

	return out
}

// loadError maps a repository read failure to NotFound or Database.
func loadError(err error, entity string) *errors.AppError {
	if stdErrors.Is(err, repository.ErrNotFound) {
		return errors.NotFoundError(entity + " not found").WithError(err)
	}

	return errors.DatabaseError("Failed to fetch " + strings.ToLower(entity)).WithError(err)
}

func checkOwner(ownerID, callerID, entity string) error {
	if ownerID != callerID {
		return errors.ForbiddenError("You don't have permission to access this " + strings.ToLower(entity))
	}

	return nil
}
