package client

import (
	"context"
	"net/http"
	"time"

	"github.com/linguaverse/statistics-service/internal/logging"
	"github.com/linguaverse/statistics-service/internal/models"
)

const usersTarget = "users-service"

// UsersClient fetches registration counters from the users/auth service.
type UsersClient struct {
	baseURL string
	http    *http.Client
	logger  *logging.Logger
}

// NewUsersClient creates a UsersClient pointing at the given base URL.
func NewUsersClient(baseURL string, timeout time.Duration, logger *logging.Logger) *UsersClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &UsersClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// RegistrationStats returns the registration breakdown for the given month
// window, with TotalNew computed here and the resolved month label stamped
// on. Resolves to an all-zero report if the users service is unreachable.
func (c *UsersClient) RegistrationStats(ctx context.Context, win models.MonthWindow) models.RegistrationReport {
	endpoint := "/auth/users/stats"

	var body struct {
		NewStudents int `json:"newStudents"`
		NewTeachers int `json:"newTeachers"`
	}
	err := getJSON(ctx, c.http, c.baseURL+endpoint+"?"+rangeQuery(win), &body)
	observeCall(usersTarget, endpoint, err)
	if err != nil {
		c.logger.ErrorContext(ctx, "registration stats lookup failed, defaulting to zeros",
			logging.Target(usersTarget),
			logging.Month(win.Label()),
			logging.Error(err),
		)
		return models.RegistrationReport{Month: win.Label()}
	}

	return models.RegistrationReport{
		Month:       win.Label(),
		NewStudents: body.NewStudents,
		NewTeachers: body.NewTeachers,
		TotalNew:    body.NewStudents + body.NewTeachers,
	}
}
