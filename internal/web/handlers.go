package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/amishk599/jobdesk/internal/filter"
	"github.com/amishk599/jobdesk/internal/jobview"
	"github.com/amishk599/jobdesk/internal/model"
)

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	page, err := s.board.ListJobs(r.Context())
	if err != nil {
		s.loadFailed(w, r, "listing jobs", err)
		return
	}
	jobs, err := jobview.Listing(page)
	if err != nil {
		s.loadFailed(w, r, "aggregating jobs", err)
		return
	}

	query := r.URL.Query().Get("q")
	jobs = filter.Apply(filter.NewKeywordFilter(query), jobs)

	s.render(w, r, http.StatusOK, "listings", pageData{
		Title: "Job Listing",
		Query: query,
		Cards: jobview.NewCards(jobs),
	})
}

func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	job, ok := s.loadJob(w, r)
	if !ok {
		return
	}
	s.render(w, r, http.StatusOK, "listing", pageData{
		Title:  job.Name,
		Detail: jobview.NewDetail(job, s.applyURL),
	})
}

func (s *Server) handleManage(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.board.ListAllJobs(r.Context())
	if err != nil {
		s.loadFailed(w, r, "listing all jobs", err)
		return
	}
	s.render(w, r, http.StatusOK, "manage", pageData{
		Title: "All Jobs",
		Rows:  jobview.NewRows(jobs),
	})
}

func (s *Server) handleManageJob(w http.ResponseWriter, r *http.Request) {
	job, ok := s.loadJob(w, r)
	if !ok {
		return
	}
	s.render(w, r, http.StatusOK, "manage_job", pageData{
		Title:  job.Name,
		Detail: jobview.NewDetail(job, ""),
	})
}

// handleAction applies a moderation action and always redirects back to the
// management table. Failures are logged only.
func (s *Server) handleAction(action model.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := RequestIDFrom(r.Context())
		id, err := strconv.Atoi(r.PathValue("jobId"))
		if err != nil {
			s.logger.Warn("invalid job id",
				"request_id", reqID,
				"job_id", r.PathValue("jobId"),
				"action", string(action),
			)
		} else {
			if err := s.moderate(r, action, id); err != nil {
				s.logger.Error("moderation failed",
					"request_id", reqID,
					"job_id", id,
					"action", string(action),
					"error", err,
				)
			}
		}
		http.Redirect(w, r, "/manage-jobs", http.StatusSeeOther)
	}
}

func (s *Server) moderate(r *http.Request, action model.Action, id int) error {
	switch action {
	case model.ActionApprove:
		return s.moderator.Approve(r.Context(), id)
	default:
		return s.moderator.MarkAsSpam(r.Context(), id)
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "notfound", pageData{
		Title:   "Not found",
		Message: "Page not found.",
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// loadJob resolves {jobId} and fetches the job. It writes the not-found or
// error page itself and reports false when it did.
func (s *Server) loadJob(w http.ResponseWriter, r *http.Request) (model.Job, bool) {
	id, err := strconv.Atoi(r.PathValue("jobId"))
	if err != nil {
		s.jobNotFound(w, r)
		return model.Job{}, false
	}

	job, err := s.board.GetJob(r.Context(), id)
	if errors.Is(err, model.ErrJobNotFound) {
		s.jobNotFound(w, r)
		return model.Job{}, false
	}
	if err != nil {
		s.loadFailed(w, r, "getting job", err)
		return model.Job{}, false
	}
	return job, true
}

func (s *Server) jobNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "notfound", pageData{
		Title:   "No job found",
		Message: "No job found...",
	})
}

func (s *Server) loadFailed(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.Error(op,
		"request_id", RequestIDFrom(r.Context()),
		"path", r.URL.Path,
		"error", err,
	)
	s.render(w, r, http.StatusBadGateway, "error", pageData{
		Title:   "Error",
		Message: "Could not load jobs",
	})
}
