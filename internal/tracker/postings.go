package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/skills"
	"github.com/jonathan/internship-matcher/internal/types"
)

// PostInternship creates a recruiter posting with a generated id. Skills are deduplicated
// and the first three become the display tags.
func (s *Service) PostInternship(ctx context.Context, req *types.CreatePostingRequest) (*types.InternshipPosting, error) {
	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Field: "posting", Message: err.Error()}
	}

	required := skills.Dedupe(req.RequiredSkills)
	postedAt := s.now().UTC()
	p := &types.InternshipPosting{
		ID:                s.newID(),
		Title:             req.Title,
		Organization:      req.Organization,
		Description:       req.Description,
		Sector:            req.Sector,
		RequiredSkills:    required,
		RequiredEducation: req.RequiredEducation,
		Deadline:          req.Deadline,
		Location:          req.Location,
		Stipend:           req.Stipend,
		DurationWeeks:     req.DurationWeeks,
		Remote:            req.Remote,
		Tags:              catalog.DefaultTags(required),
		RecruiterID:       req.RecruiterID,
		PostedAt:          &postedAt,
	}

	if err := s.store.CreatePosting(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create posting: %w", err)
	}

	log.Printf("[tracker] Recruiter %s posted %s (%s)", req.RecruiterID, p.ID, p.Title)
	return p, nil
}

// GetPosting resolves a posting from the catalog or the store.
func (s *Service) GetPosting(ctx context.Context, postingID string) (*types.InternshipPosting, error) {
	return s.requirePosting(ctx, postingID)
}

// ListPostings returns the static catalog followed by recruiter postings. A non-empty
// recruiterID restricts the list to that recruiter's postings.
func (s *Service) ListPostings(ctx context.Context, recruiterID string) ([]types.InternshipPosting, error) {
	if recruiterID != "" {
		postings, err := s.store.ListPostingsByRecruiter(ctx, recruiterID)
		if err != nil {
			return nil, fmt.Errorf("failed to list postings: %w", err)
		}
		return postings, nil
	}
	return s.catalog.All(ctx)
}

// DeletePosting removes a recruiter posting. Static catalog postings cannot be deleted.
// Existing applications keep their snapshot of the posting's title and organization.
func (s *Service) DeletePosting(ctx context.Context, postingID string) error {
	if s.catalog.IsStatic(postingID) {
		return &ErrStaticPosting{PostingID: postingID}
	}

	deleted, err := s.store.DeletePosting(ctx, postingID)
	if err != nil {
		return fmt.Errorf("failed to delete posting: %w", err)
	}
	if !deleted {
		return &ErrPostingNotFound{PostingID: postingID}
	}

	log.Printf("[tracker] Deleted posting %s", postingID)
	return nil
}

// PostingApplications returns the applicants to a single posting.
func (s *Service) PostingApplications(ctx context.Context, postingID string) ([]types.Applicant, error) {
	if _, err := s.requirePosting(ctx, postingID); err != nil {
		return nil, err
	}
	apps, err := s.store.ListApplicationsByPosting(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return s.withApplicants(ctx, apps)
}

// RecruiterApplications returns the applicants to all of a recruiter's postings.
func (s *Service) RecruiterApplications(ctx context.Context, recruiterID string) ([]types.Applicant, error) {
	apps, err := s.store.ListApplicationsByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return s.withApplicants(ctx, apps)
}

// withApplicants attaches each applicant's profile. Applications from deleted
// candidates keep an empty profile.
func (s *Service) withApplicants(ctx context.Context, apps []types.Application) ([]types.Applicant, error) {
	out := make([]types.Applicant, 0, len(apps))
	for _, a := range apps {
		applicant := types.Applicant{Application: a, Skills: []string{}}

		c, err := s.store.GetCandidate(ctx, a.CandidateID)
		if err != nil {
			return nil, fmt.Errorf("failed to get candidate: %w", err)
		}
		if c != nil {
			applicant.CandidateName = c.Name
			applicant.EducationLevel = c.EducationLevel
			applicant.Skills = c.Skills
			applicant.District = c.District
		}
		out = append(out, applicant)
	}
	return out, nil
}
