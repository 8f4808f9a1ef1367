package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobdesk/internal/api"
	"github.com/amishk599/jobdesk/internal/filter"
	"github.com/amishk599/jobdesk/internal/jobview"
	"github.com/amishk599/jobdesk/internal/model"
	"github.com/amishk599/jobdesk/internal/tui"
)

var (
	jobsAll    bool
	jobsQuery  string
	jobsStatus string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List jobs",
	Long:  "Prints the public job listing, or every job including unmoderated ones with --all.",
	RunE:  runJobs,
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Print one job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsShow,
}

func init() {
	jobsCmd.Flags().BoolVar(&jobsAll, "all", false, "list every job from the moderation endpoint")
	jobsCmd.Flags().StringVarP(&jobsQuery, "query", "q", "", "only jobs matching every keyword")
	jobsCmd.Flags().StringVar(&jobsStatus, "status", "", "only jobs with this status (pending, approved, spam, unknown)")
	jobsCmd.AddCommand(jobsShowCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	var statusFilter model.JobFilter
	if jobsStatus != "" {
		st, err := model.ParseStatus(jobsStatus)
		if err != nil {
			return err
		}
		statusFilter = filter.NewStatusFilter(st)
	}

	logger := setupLogger(debug)
	cfg := mustLoadAPIConfig(logger)

	jobs, err := fetchJobs(cmd.Context(), newAPIClient(cfg), jobsAll)
	if err != nil {
		logger.Error("failed to load jobs", "error", err)
		os.Exit(1)
	}

	jobs = filter.Apply(filter.NewKeywordFilter(jobsQuery), jobs)
	jobs = filter.Apply(statusFilter, jobs)

	printJobs(os.Stdout, jobs)
	return nil
}

func fetchJobs(ctx context.Context, client *api.Client, all bool) ([]model.Job, error) {
	if all {
		return client.ListAllJobs(ctx)
	}
	page, err := client.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	return jobview.Listing(page)
}

func printJobs(w io.Writer, jobs []model.Job) {
	fmt.Fprintf(w, "%-7s %-40s %-25s %-20s %s\n", "ID", "Name", "Company", "Posted By", "Status")
	fmt.Fprintln(w, strings.Repeat("─", 102))

	for _, r := range jobview.NewRows(jobs) {
		fmt.Fprintf(w, "%-7d %-40s %-25s %-20s %s\n",
			r.ID, truncate(r.Name, 40), truncate(r.Company, 25), truncate(r.PostedBy, 20), r.Status.Label())
	}

	fmt.Fprintf(w, "\nTotal: %d jobs\n", len(jobs))
}

func runJobsShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid job id %q", args[0])
	}

	logger := setupLogger(debug)
	cfg := mustLoadAPIConfig(logger)

	job, err := newAPIClient(cfg).GetJob(cmd.Context(), id)
	if errors.Is(err, model.ErrJobNotFound) {
		fmt.Println("No job found...")
		os.Exit(1)
	}
	if err != nil {
		logger.Error("failed to load job", "job_id", id, "error", err)
		os.Exit(1)
	}

	printJob(os.Stdout, jobview.NewDetail(job, cfg.Site.ApplyURL), job.PostedBy())
	return nil
}

func printJob(w io.Writer, d jobview.Detail, postedBy string) {
	title := d.Name
	if label := d.Status.Label(); label != "" {
		title += " | " + label
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, d.SubHeader.String())
	if postedBy != "" {
		fmt.Fprintf(w, "Posted by %s\n", postedBy)
	}

	for _, s := range d.Sections {
		fmt.Fprintf(w, "\n%s\n%s\n", s.Name, tui.MarkupText(s.Value))
	}

	if d.ApplyURL != "" {
		fmt.Fprintf(w, "\nApply: %s\n", d.ApplyURL)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
