package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"soundvibe/compatibility-api/internal/models"
	"soundvibe/compatibility-api/internal/repositories"
)

type MatchOptions struct {
	Limit    int
	MinScore int
}

type MatcherService interface {
	FindMatches(ctx context.Context, profileID uuid.UUID, opts MatchOptions) ([]models.MatchResult, error)
}

type matcherService struct {
	profileRepo   repositories.ProfileRepository
	scorer        CompatibilityService
	concurrency   int
	candidatePool int
}

func NewMatcherService(
	profileRepo repositories.ProfileRepository,
	scorer CompatibilityService,
	concurrency int,
	candidatePool int,
) MatcherService {
	if concurrency < 1 {
		concurrency = 1
	}
	if candidatePool < 1 {
		candidatePool = 1
	}
	return &matcherService{
		profileRepo:   profileRepo,
		scorer:        scorer,
		concurrency:   concurrency,
		candidatePool: candidatePool,
	}
}

// FindMatches scores the profile against the most recent candidates and
// returns the best ones, highest total first. Ties are broken by candidate id.
func (m *matcherService) FindMatches(ctx context.Context, profileID uuid.UUID, opts MatchOptions) ([]models.MatchResult, error) {
	if opts.Limit < 1 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}
	if opts.MinScore < 0 || opts.MinScore > MaxTotalScore {
		return nil, fmt.Errorf("%w: min_score must be between 0 and %d", ErrInvalidInput, MaxTotalScore)
	}

	source, err := m.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	candidates, err := m.profileRepo.FindCandidates(ctx, profileID, m.candidatePool)
	if err != nil {
		return nil, err
	}

	log.Printf("🔍 Scoring %d candidates for profile %s\n", len(candidates), profileID)

	sourceSnapshot := source.Snapshot()
	scored := make([]models.MatchResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)
	for i := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c := &candidates[i]
			res := m.scorer.Score(sourceSnapshot, c.Snapshot())
			scored[i] = models.MatchResult{
				ProfileID:  c.ID.String(),
				Username:   c.Username,
				TotalScore: res.TotalScore,
				Breakdown:  res.Breakdown,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to score candidates: %w", err)
	}

	matches := make([]models.MatchResult, 0, len(scored))
	for _, r := range scored {
		if r.TotalScore >= opts.MinScore {
			matches = append(matches, r)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].TotalScore != matches[j].TotalScore {
			return matches[i].TotalScore > matches[j].TotalScore
		}
		return matches[i].ProfileID < matches[j].ProfileID
	})

	if len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}

	return matches, nil
}
