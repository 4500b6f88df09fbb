package jobs

import (
	"net/url"
	"strings"
	"time"
)

// JobRequest is the payload for creating or updating a job.
type JobRequest struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Mode        string `json:"mode"`
	DateApplied string `json:"dateApplied"`
	JobURL      string `json:"jobUrl"`
}

const minFieldLen = 2

// Validate checks the request against the job schema. It returns the parsed
// editable fields, or a field-keyed map of messages when the payload is
// rejected. No partial writes happen on rejection.
func (r JobRequest) Validate() (Fields, map[string]string) {
	problems := make(map[string]string)

	title := strings.TrimSpace(r.JobTitle)
	if len(title) < minFieldLen {
		problems["jobTitle"] = "Job Title must be at least 2 characters."
	}
	company := strings.TrimSpace(r.Company)
	if len(company) < minFieldLen {
		problems["company"] = "Company must be at least 2 characters."
	}
	location := strings.TrimSpace(r.Location)
	if len(location) < minFieldLen {
		problems["location"] = "Location must be at least 2 characters."
	}

	status := Status(r.Status)
	if !status.Valid() {
		problems["status"] = "Status must be one of Pending, Applied, Interviewing, Offer, Declined, Rejected."
	}
	mode := Mode(r.Mode)
	if !mode.Valid() {
		problems["mode"] = "Mode must be one of FullTime, PartTime, Internship."
	}

	dateApplied, err := parseDate(r.DateApplied)
	if err != nil {
		problems["dateApplied"] = "Date Applied must be a valid date."
	}

	jobURL := strings.TrimSpace(r.JobURL)
	if jobURL != "" && !isAbsoluteURL(jobURL) {
		problems["jobUrl"] = "Job URL must be a valid URL."
	}

	if len(problems) > 0 {
		return Fields{}, problems
	}
	return Fields{
		JobTitle:    title,
		Company:     company,
		Location:    location,
		Status:      status,
		Mode:        mode,
		DateApplied: dateApplied,
		JobURL:      jobURL,
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
