package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/cinelog/backend/internal/models"
	"github.com/anonto42/cinelog/backend/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FriendshipService struct {
	repos *repositories.Repositories
}

func NewFriendshipService(repos *repositories.Repositories) *FriendshipService {
	return &FriendshipService{repos: repos}
}

// AddFriend sends a friend request from identity to friendEmail and returns the resulting
// status. A pending request in the other direction is accepted instead.
func (s *FriendshipService) AddFriend(ctx context.Context, identity, friendEmail string) (string, error) {
	var status string
	err := s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		user, err := userByEmail(ctx, tx.Users, identity)
		if err != nil {
			return err
		}
		friend, err := userByEmail(ctx, tx.Users, friendEmail)
		if err != nil {
			return err
		}
		if user.ID == friend.ID {
			return fmt.Errorf("%w: cannot friend yourself", ErrValidation)
		}

		existing, err := tx.Friendships.GetFriendshipBetween(ctx, user.ID, friend.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if _, err := tx.Friendships.UpsertFriendship(ctx, user.ID, friend.ID, models.FriendshipPending); err != nil {
				return err
			}
			status = models.FriendshipPending
			return nil
		}
		if err != nil {
			return err
		}

		switch existing.Status {
		case models.FriendshipBlocked:
			return fmt.Errorf("%w: friendship is blocked", ErrForbidden)
		case models.FriendshipAccepted:
			return fmt.Errorf("%w: already friends with %s", ErrConflict, friendEmail)
		}
		if existing.UserID == friend.ID {
			if err := tx.Friendships.UpdateFriendshipStatus(ctx, existing, models.FriendshipAccepted); err != nil {
				return err
			}
		}
		status = existing.Status
		return nil
	})
	if err != nil {
		return "", err
	}
	return status, nil
}

// AcceptFriend accepts the pending request friendID sent to identity
func (s *FriendshipService) AcceptFriend(ctx context.Context, identity string, friendID uuid.UUID) error {
	return s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		user, err := userByEmail(ctx, tx.Users, identity)
		if err != nil {
			return err
		}
		f, err := tx.Friendships.GetFriendshipBetween(ctx, user.ID, friendID)
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && (f.UserID != friendID || f.Status != models.FriendshipPending)) {
			return fmt.Errorf("%w: no pending request from %s", ErrNotFound, friendID)
		}
		if err != nil {
			return err
		}
		return tx.Friendships.UpdateFriendshipStatus(ctx, f, models.FriendshipAccepted)
	})
}

// BlockFriend replaces whatever links the pair with a block owned by identity
func (s *FriendshipService) BlockFriend(ctx context.Context, identity string, friendID uuid.UUID) error {
	return s.repos.Transaction(ctx, func(tx *repositories.Repositories) error {
		user, err := userByEmail(ctx, tx.Users, identity)
		if err != nil {
			return err
		}
		if _, err := userByID(ctx, tx.Users, friendID); err != nil {
			return err
		}
		if user.ID == friendID {
			return fmt.Errorf("%w: cannot block yourself", ErrValidation)
		}
		if _, err := tx.Friendships.DeleteFriendship(ctx, user.ID, friendID); err != nil {
			return err
		}
		_, err = tx.Friendships.UpsertFriendship(ctx, user.ID, friendID, models.FriendshipBlocked)
		return err
	})
}

// ListFriends returns accepted friends from both directions, newest first
func (s *FriendshipService) ListFriends(ctx context.Context, identity string) ([]models.FriendResponse, error) {
	out := []models.FriendResponse{}
	user, err := optionalUser(ctx, s.repos.Users, identity)
	if err != nil || user == nil {
		return out, err
	}

	rows, err := s.repos.Friendships.GetAcceptedFriendships(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		id, other := rows[i].OtherParty(user.ID)
		out = append(out, models.FriendResponse{
			ID:        id.String(),
			Email:     other.Email,
			Status:    models.FriendshipAccepted,
			CreatedAt: rows[i].CreatedAt,
		})
	}
	return out, nil
}

// ListPendingRequests returns requests waiting for identity to accept
func (s *FriendshipService) ListPendingRequests(ctx context.Context, identity string) ([]models.FriendResponse, error) {
	out := []models.FriendResponse{}
	user, err := optionalUser(ctx, s.repos.Users, identity)
	if err != nil || user == nil {
		return out, err
	}

	rows, err := s.repos.Friendships.GetPendingIncoming(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for _, f := range rows {
		out = append(out, models.FriendResponse{
			ID:        f.UserID.String(),
			Email:     f.User.Email,
			Status:    f.Status,
			CreatedAt: f.CreatedAt,
		})
	}
	return out, nil
}

// RemoveFriend deletes the friendship in whichever direction it was stored
func (s *FriendshipService) RemoveFriend(ctx context.Context, identity string, friendID uuid.UUID) error {
	user, err := userByEmail(ctx, s.repos.Users, identity)
	if err != nil {
		return err
	}
	n, err := s.repos.Friendships.DeleteFriendship(ctx, user.ID, friendID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: no friendship with %s", ErrNotFound, friendID)
	}
	return nil
}
