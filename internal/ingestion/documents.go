package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

// DocumentError reports a profile or job document that could not be loaded.
type DocumentError struct {
	Source  string
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// DecodeProfile validates data against the candidate profile schema and decodes it.
func DecodeProfile(source string, data []byte) (*types.CandidateProfile, error) {
	if err := schemas.Validate(schemas.CandidateProfile, data); err != nil {
		return nil, &DocumentError{Source: source, Message: "invalid candidate profile", Cause: err}
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, &DocumentError{Source: source, Message: "failed to decode candidate profile", Cause: err}
	}

	bio, err := TextField(profile.Bio)
	if err != nil {
		return nil, &DocumentError{Source: source, Message: "failed to clean bio", Cause: err}
	}
	profile.Bio = Flatten(bio)

	if err := profile.Validate(); err != nil {
		return nil, &DocumentError{Source: source, Message: "invalid candidate profile", Cause: err}
	}
	return &profile, nil
}

// DecodeJobs validates data against the job list schema, decodes it and
// converts markup in the free-text fields to plain text.
func DecodeJobs(source string, data []byte) ([]types.JobPosting, error) {
	if err := schemas.Validate(schemas.JobList, data); err != nil {
		return nil, &DocumentError{Source: source, Message: "invalid job list", Cause: err}
	}

	var jobs []types.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, &DocumentError{Source: source, Message: "failed to decode job list", Cause: err}
	}

	for i := range jobs {
		if err := PrepareJob(&jobs[i]); err != nil {
			return nil, &DocumentError{Source: source, Message: fmt.Sprintf("job %d", jobs[i].ID), Cause: err}
		}
	}
	return jobs, nil
}

// PrepareJob converts the job's free-text fields to flat plain text and validates it.
func PrepareJob(job *types.JobPosting) error {
	for _, field := range []*string{&job.Description, &job.Requirements, &job.Responsibilities} {
		text, err := TextField(*field)
		if err != nil {
			return err
		}
		*field = Flatten(text)
	}
	job.Title = Flatten(job.Title)
	return job.Validate()
}

// LoadProfile reads and decodes a candidate profile file.
func LoadProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return DecodeProfile(path, data)
}

// LoadJobs reads and decodes a job list file.
func LoadJobs(path string) ([]types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return DecodeJobs(path, data)
}
