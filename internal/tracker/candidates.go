package tracker

import (
	"context"
	"fmt"

	"github.com/jonathan/internship-matcher/internal/skills"
	"github.com/jonathan/internship-matcher/internal/types"
)

// CreateCandidate validates the request and stores a new profile with a generated id.
// Skills are canonicalized and deduplicated.
func (s *Service) CreateCandidate(ctx context.Context, req *types.CreateCandidateRequest) (*types.CandidateProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Field: "candidate", Message: err.Error()}
	}

	now := s.now().UTC()
	c := &types.CandidateProfile{
		ID:                 s.newID(),
		Name:               req.Name,
		Phone:              req.Phone,
		District:           req.District,
		EducationLevel:     req.EducationLevel,
		Skills:             skills.Dedupe(req.Skills),
		FirstGen:           req.FirstGen,
		Gender:             req.Gender,
		Location:           req.Location,
		PreferredLocations: req.PreferredLocations,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.store.CreateCandidate(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return c, nil
}

// GetCandidate returns a profile or ErrCandidateNotFound.
func (s *Service) GetCandidate(ctx context.Context, candidateID string) (*types.CandidateProfile, error) {
	return s.requireCandidate(ctx, candidateID)
}

// UpdateCandidate applies the non-nil fields of req to an existing profile.
func (s *Service) UpdateCandidate(ctx context.Context, candidateID string, req *types.UpdateCandidateRequest) (*types.CandidateProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Field: "candidate", Message: err.Error()}
	}

	c, err := s.requireCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.District != nil {
		c.District = *req.District
	}
	if req.EducationLevel != nil {
		c.EducationLevel = *req.EducationLevel
	}
	if req.Skills != nil {
		c.Skills = skills.Dedupe(req.Skills)
	}
	if req.FirstGen != nil {
		c.FirstGen = *req.FirstGen
	}
	if req.Gender != nil {
		c.Gender = *req.Gender
	}
	if req.Location != nil {
		c.Location = req.Location
	}
	c.UpdatedAt = s.now().UTC()

	if err := s.store.UpdateCandidate(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return c, nil
}
