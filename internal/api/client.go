// Package api is the HTTP client for the remote job-board API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amishk599/jobdesk/internal/jobview"
	"github.com/amishk599/jobdesk/internal/model"
)

var (
	_ model.JobBoard     = (*Client)(nil)
	_ model.JobModerator = (*Client)(nil)
)

// jobResponse is the body of GET /jobs/{id}.
type jobResponse struct {
	Job *model.Job `json:"job"`
}

// allJobsResponse is the body of GET /get-all-jobs.
type allJobsResponse struct {
	Jobs []model.Job `json:"jobs"`
}

// Client talks to the job API rooted at baseURL.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the API at baseURL. A trailing slash is ignored.
func NewClient(baseURL string, client *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// ListJobs fetches the public listing: first-party jobs and cached external jobs.
// Absent collections are left nil for the caller to reject.
func (c *Client) ListJobs(ctx context.Context) (model.JobsPage, error) {
	var page model.JobsPage
	if err := c.getJSON(ctx, "/jobs", &page); err != nil {
		return model.JobsPage{}, fmt.Errorf("list jobs: %w", err)
	}
	return page, nil
}

// GetJob fetches a single job. A 404 or a response without a job yields
// model.ErrJobNotFound.
func (c *Client) GetJob(ctx context.Context, id int) (model.Job, error) {
	var resp jobResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/jobs/%d", id), &resp); err != nil {
		if isNotFound(err) {
			return model.Job{}, fmt.Errorf("get job %d: %w", id, model.ErrJobNotFound)
		}
		return model.Job{}, fmt.Errorf("get job %d: %w", id, err)
	}
	if resp.Job == nil {
		return model.Job{}, fmt.Errorf("get job %d: %w", id, model.ErrJobNotFound)
	}
	return *resp.Job, nil
}

// ListAllJobs fetches every job regardless of moderation status.
func (c *Client) ListAllJobs(ctx context.Context) ([]model.Job, error) {
	var resp allJobsResponse
	if err := c.getJSON(ctx, "/get-all-jobs", &resp); err != nil {
		return nil, fmt.Errorf("list all jobs: %w", err)
	}
	if resp.Jobs == nil {
		return nil, fmt.Errorf("list all jobs: %w: jobs", jobview.ErrMissingCollection)
	}
	return resp.Jobs, nil
}

// Approve marks a job as approved. The response body is ignored.
func (c *Client) Approve(ctx context.Context, id int) error {
	if err := c.put(ctx, fmt.Sprintf("/jobs/%d/approve", id)); err != nil {
		return fmt.Errorf("approve job %d: %w", id, err)
	}
	return nil
}

// MarkAsSpam marks a job as spam. The response body is ignored.
func (c *Client) MarkAsSpam(ctx context.Context, id int) error {
	if err := c.put(ctx, fmt.Sprintf("/jobs/%d/mark-as-spam", id)); err != nil {
		return fmt.Errorf("mark job %d as spam: %w", id, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) put(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
