package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/linguaverse/statistics-service/internal/models"
)

// StatsClient talks to a running statistics service over HTTP.
type StatsClient struct {
	baseURL  string
	callerID string
	client   *http.Client
}

func NewStatsClient(baseURL, callerID string) *StatsClient {
	return &StatsClient{
		baseURL:  baseURL,
		callerID: callerID,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *StatsClient) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.callerID != "" {
		req.Header.Set("X-User-ID", c.callerID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *StatsClient) ListEvents() ([]models.ActivityEvent, error) {
	var events []models.ActivityEvent
	err := c.do(http.MethodGet, "/statistics", nil, &events)
	return events, err
}

func (c *StatsClient) ListEventsForUser(userID string) ([]models.ActivityEvent, error) {
	var events []models.ActivityEvent
	err := c.do(http.MethodGet, "/statistics/user/"+userID, nil, &events)
	return events, err
}

func (c *StatsClient) SendEvent(req models.CreateEventRequest) (*models.ActivityEvent, error) {
	var event models.ActivityEvent
	if err := c.do(http.MethodPost, "/statistics", req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *StatsClient) RecordLogin(userID string) error {
	return c.do(http.MethodPost, "/statistics/login", models.RecordLoginRequest{OwnerID: userID}, nil)
}

func (c *StatsClient) StudentDashboard(studentID string) (*models.DashboardReport, error) {
	var report models.DashboardReport
	if err := c.do(http.MethodGet, "/statistics/student/"+studentID+"/dashboard", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *StatsClient) RegistrationStats(month string) (*models.RegistrationReport, error) {
	path := "/statistics/admin/users"
	if month != "" {
		path += "/" + month
	}
	var report models.RegistrationReport
	if err := c.do(http.MethodGet, path, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *StatsClient) LessonStats(month string) (*models.LessonReport, error) {
	path := "/statistics/admin/lessons"
	if month != "" {
		path += "/" + month
	}
	var report models.LessonReport
	if err := c.do(http.MethodGet, path, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *StatsClient) PlatformStats() (*models.PlatformReport, error) {
	var report models.PlatformReport
	if err := c.do(http.MethodGet, "/statistics/admin/platform", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
