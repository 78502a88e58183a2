package coach

import (
	"context"
	"errors"

	"github.com/user/immy-go/apperror"
)

// CoachService resolves child ownership and builds the coach feed.
type CoachService struct {
	store ChildStore
}

// NewCoachService creates a new CoachService.
func NewCoachService(store ChildStore) *CoachService {
	return &CoachService{store: store}
}

// ResolveChild is the authorization boundary for child-scoped data. Given
// the authenticated subject and an optional requested child id, it returns
// the child id the subject may read:
//
//   - childID > 0: the child must exist and belong to the subject. A child
//     that does not exist and a child owned by someone else produce the same
//     outcome, so callers cannot probe for other accounts' records.
//   - childID <= 0: falls back to the subject's lowest-id child.
func (s *CoachService) ResolveChild(ctx context.Context, userID, childID int) (int, error) {
	if childID > 0 {
		id, err := s.store.OwnedChildID(ctx, childID, userID)
		if err != nil {
			if errors.Is(err, ErrChildNotFound) {
				return 0, apperror.NewNotFoundError("Child not found or not authorized", nil)
			}
			return 0, apperror.NewDatabaseError("Failed to resolve child", err)
		}
		return id, nil
	}

	id, err := s.store.FirstChildID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoChildren) {
			return 0, apperror.NewNotFoundError("No children found for this user", nil)
		}
		return 0, apperror.NewDatabaseError("Failed to resolve child", err)
	}
	return id, nil
}

// GetCoachData resolves the child and returns the feed scoped to it.
func (s *CoachService) GetCoachData(ctx context.Context, userID, childID int) (*CoachData, error) {
	resolved, err := s.ResolveChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}
	return buildCoachData(resolved), nil
}

// buildCoachData assembles the feed for a child. The content is the
// reference payload; a future version will derive it from observed activity.
func buildCoachData(childID int) *CoachData {
	return &CoachData{
		ChildID:    childID,
		Engagement: 87,
		NewSkills:  5,
		CurrentActivity: Activity{
			Title:       "Solar System Craft",
			Description: "Create a model solar system using household items to build on Emma's space interest.",
		},
		Milestones: []Milestone{
			{
				ID:          1,
				Title:       "Advanced Number Recognition",
				Description: "Successfully counted to 20 without help",
				Icon:        "star",
			},
			{
				ID:          2,
				Title:       "Scientific Curiosity",
				Description: "Growing interest in space and planets",
				Icon:        "science",
			},
		},
		RecommendedActivities: []Activity{
			{
				ID:          1,
				Title:       "Solar System Craft",
				Description: "Create a model solar system using household items to build on Emma's space interest.",
				Icon:        "rocket",
			},
			{
				ID:          2,
				Title:       "Number Scavenger Hunt",
				Description: "Find and count objects around the house to practice numbers up to 20.",
				Icon:        "numbers",
			},
		},
	}
}
