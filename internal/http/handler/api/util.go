package api

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	httpCtx "github.com/bornholm/mustdo/internal/http/context"
	"github.com/pkg/errors"
)

const (
	messageInvalidDueDate  = "Due date must be a valid date (YYYY-MM-DD)"
	messageUnknownTimezone = "Unknown time zone"
)

func getQueryLocation(query url.Values, name string, defaultValue *time.Location) (*time.Location, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return defaultValue, nil
	}

	loc, err := time.LoadLocation(raw)
	if err != nil {
		return nil, errors.WithStack(port.NewValidationError(messageUnknownTimezone))
	}

	return loc, nil
}

// parseDueDate treats a missing or empty value as "no due date".
func parseDueDate(raw *string) (*model.Date, error) {
	if raw == nil {
		return nil, nil
	}

	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}

	date, err := model.ParseDate(value)
	if err != nil {
		return nil, errors.WithStack(port.NewValidationError(messageInvalidDueDate))
	}

	return &date, nil
}

func getContextUserID(ctx context.Context) model.UserID {
	user := httpCtx.User(ctx)
	if user == nil {
		return ""
	}

	return user.ID()
}
