package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/amishk599/jobdesk/internal/jobview"
	"github.com/amishk599/jobdesk/internal/model"
)

// Ensure SlackNotifier implements model.Notifier.
var _ model.Notifier = (*SlackNotifier)(nil)

// SlackNotifier posts jobs awaiting review to a Slack channel via Incoming Webhooks.
type SlackNotifier struct {
	webhookURL string
	siteURL    string // base of the moderation pages, may be empty
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSlackNotifier returns a notifier that posts each job to Slack via webhook.
// When siteURL is set, messages link to the job's moderation page.
func NewSlackNotifier(webhookURL, siteURL string, httpClient *http.Client, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		siteURL:    strings.TrimRight(siteURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Notify sends each job as a separate Slack message using Block Kit.
// Returns an error only if ALL messages fail. Individual failures are logged.
func (s *SlackNotifier) Notify(jobs []model.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	failures := 0
	for i, j := range jobs {
		if i > 0 {
			time.Sleep(500 * time.Millisecond)
		}

		if err := s.sendMessage(j); err != nil {
			s.logger.Error("slack notification failed", "job_id", j.ID, "name", j.Name, "error", err)
			failures++
		}
	}

	sent := len(jobs) - failures
	if failures == len(jobs) {
		return fmt.Errorf("all %d slack notifications failed", failures)
	}
	s.logger.Info("slack notifications complete", "sent", sent, "failed", failures)
	return nil
}

func (s *SlackNotifier) sendMessage(j model.Job) error {
	payload := buildPayload(j, s.siteURL)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	resp, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		secs, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		if secs <= 0 {
			secs = 1
		}
		s.logger.Warn("slack rate limited, retrying", "retry_after_secs", secs)
		time.Sleep(time.Duration(secs) * time.Second)

		resp2, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("post to slack (retry): %w", err)
		}
		defer resp2.Body.Close()

		if resp2.StatusCode != http.StatusOK {
			return fmt.Errorf("slack returned %d on retry", resp2.StatusCode)
		}
		s.logger.Info("slack message sent", "job_id", j.ID, "retried", true)
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned %d", resp.StatusCode)
	}
	s.logger.Info("slack message sent", "job_id", j.ID)
	return nil
}

// Block Kit payload types.

type slackPayload struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type     string         `json:"type"`
	Text     *slackText     `json:"text,omitempty"`
	Fields   []slackText    `json:"fields,omitempty"`
	Elements []slackElement `json:"elements,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type slackElement struct {
	Type  string    `json:"type"`
	Text  slackText `json:"text"`
	URL   string    `json:"url"`
	Style string    `json:"style"`
}

// SendTestMessage sends a dummy pending job to verify the integration works.
func SendTestMessage(n model.Notifier) error {
	testJob := model.Job{
		ID:             0,
		Name:           "Test Notification - Integration Verified",
		Subcompany:     "jobdesk",
		EmploymentType: "FULL_TIME",
		Office:         "Everywhere",
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		IsPending:      true,
		Status:         model.StatusPending,
	}
	return n.Notify([]model.Job{testJob})
}

func orFallback(s string) string {
	if s == "" {
		return jobview.Fallback
	}
	return s
}

func buildPayload(j model.Job, siteURL string) slackPayload {
	blocks := []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: "Pending review: " + j.Name},
		},
		{
			Type: "section",
			Fields: []slackText{
				{Type: "mrkdwn", Text: "*Company:*\n" + orFallback(j.Subcompany)},
				{Type: "mrkdwn", Text: "*Office:*\n" + orFallback(j.Office)},
			},
		},
		{
			Type: "section",
			Fields: []slackText{
				{Type: "mrkdwn", Text: "*Employment:*\n" + jobview.FormatEnumLabel(j.EmploymentType)},
				{Type: "mrkdwn", Text: "*Created:*\n" + orFallback(j.CreatedAt)},
			},
		},
	}

	if siteURL != "" {
		blocks = append(blocks, slackBlock{
			Type: "actions",
			Elements: []slackElement{
				{
					Type:  "button",
					Text:  slackText{Type: "plain_text", Text: "Review"},
					URL:   siteURL + jobview.ManageHref(j.ID),
					Style: "primary",
				},
			},
		})
	}
	blocks = append(blocks, slackBlock{Type: "divider"})

	return slackPayload{Blocks: blocks}
}
