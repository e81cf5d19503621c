package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"kinshare/internal/domain"
	"kinshare/internal/port"
)

// CreateCollectionInput is the DTO for creating a collection.
type CreateCollectionInput struct {
	Name    string
	OwnerID uuid.UUID
}

// UpdateCollectionInput is the DTO for updating a collection. Nil fields are
// left untouched.
type UpdateCollectionInput struct {
	Name *string
}

// MembershipService manages collections and their membership. It owns the
// owner-is-always-a-member invariant and keeps the denormalized member list
// consistent with the membership join table.
type MembershipService interface {
	Create(ctx context.Context, input CreateCollectionInput) (*domain.Collection, error)
	GetByID(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error)
	Update(ctx context.Context, collectionID uuid.UUID, input UpdateCollectionInput) (*domain.Collection, error)
	Exists(ctx context.Context, collectionID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, collectionID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, collectionID, userID uuid.UUID) error
	ListMembers(ctx context.Context, collectionID uuid.UUID) ([]domain.Member, error)
}

type membershipService struct {
	collectionRepo port.CollectionRepository
	membershipRepo port.MembershipRepository
	userDir        port.UserDirectory
	email          port.EmailSender
}

// NewMembershipService creates a new MembershipService implementation.
func NewMembershipService(
	collectionRepo port.CollectionRepository,
	membershipRepo port.MembershipRepository,
	userDir port.UserDirectory,
	email port.EmailSender,
) MembershipService {
	return &membershipService{
		collectionRepo: collectionRepo,
		membershipRepo: membershipRepo,
		userDir:        userDir,
		email:          email,
	}
}

func (s *membershipService) Create(ctx context.Context, input CreateCollectionInput) (*domain.Collection, error) {
	collection := &domain.Collection{
		ID:                 uuid.New(),
		Name:               input.Name,
		OwnerID:            input.OwnerID,
		Members:            domain.UUIDList{input.OwnerID},
		RelatedCollections: domain.UUIDList{},
	}

	log.Printf("membershipService.Create: creating collection %s owned by %s", collection.ID, input.OwnerID)

	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		log.Printf("membershipService.Create: failed to create collection: %v", err)
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	if err := s.userDir.AddToCollection(ctx, input.OwnerID, collection.ID); err != nil {
		return nil, fmt.Errorf("registering collection with owner %s: %w", input.OwnerID, err)
	}

	return collection, nil
}

func (s *membershipService) GetByID(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	return s.collectionRepo.GetByID(ctx, collectionID)
}

func (s *membershipService) Update(ctx context.Context, collectionID uuid.UUID, input UpdateCollectionInput) (*domain.Collection, error) {
	if _, err := s.collectionRepo.GetByID(ctx, collectionID); err != nil {
		return nil, err
	}
	if input.Name != nil {
		if err := s.collectionRepo.UpdateName(ctx, collectionID, *input.Name); err != nil {
			return nil, fmt.Errorf("updating collection %s: %w", collectionID, err)
		}
	}
	return s.collectionRepo.GetByID(ctx, collectionID)
}

func (s *membershipService) Exists(ctx context.Context, collectionID uuid.UUID) (bool, error) {
	return s.collectionRepo.Exists(ctx, collectionID)
}

func (s *membershipService) AddMember(ctx context.Context, collectionID, userID uuid.UUID) error {
	collection, err := s.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}

	// Already a member: nothing to write, nothing to notify.
	if collection.Members.Contains(userID) {
		return nil
	}

	if err := s.membershipRepo.Add(ctx, collectionID, userID); err != nil {
		log.Printf("membershipService.AddMember: failed to add %s to %s: %v", userID, collectionID, err)
		return fmt.Errorf("adding member %s to collection %s: %w", userID, collectionID, err)
	}

	if err := s.userDir.AddToCollection(ctx, userID, collectionID); err != nil {
		return fmt.Errorf("registering collection with user %s: %w", userID, err)
	}

	s.notifyMemberAdded(ctx, userID, collection.Name)
	return nil
}

// notifyMemberAdded sends the welcome email best-effort: a mail failure never
// fails the membership change.
func (s *membershipService) notifyMemberAdded(ctx context.Context, userID uuid.UUID, collectionName string) {
	user, err := s.userDir.GetByID(ctx, userID)
	if err != nil {
		log.Printf("membershipService.notifyMemberAdded: lookup of %s failed: %v", userID, err)
		return
	}
	if err := s.email.SendMemberAddedEmail(ctx, user.Email, user.FirstName, collectionName); err != nil {
		log.Printf("membershipService.notifyMemberAdded: email to %s failed: %v", user.Email, err)
	}
}

func (s *membershipService) RemoveMember(ctx context.Context, collectionID, userID uuid.UUID) error {
	collection, err := s.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}

	// Absolute: the owner can never be detached from its own collection.
	if userID == collection.OwnerID {
		return domain.ErrCannotRemoveOwner
	}

	if err := s.membershipRepo.Remove(ctx, collectionID, userID); err != nil {
		log.Printf("membershipService.RemoveMember: failed to remove %s from %s: %v", userID, collectionID, err)
		return fmt.Errorf("removing member %s from collection %s: %w", userID, collectionID, err)
	}

	if err := s.userDir.RemoveFromCollection(ctx, userID, collectionID); err != nil {
		return fmt.Errorf("unregistering collection from user %s: %w", userID, err)
	}

	return nil
}

func (s *membershipService) ListMembers(ctx context.Context, collectionID uuid.UUID) ([]domain.Member, error) {
	collection, err := s.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	rows, err := s.membershipRepo.ListMembers(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("listing members of collection %s: %w", collectionID, err)
	}

	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		member := domain.Member{
			ID:        row.ID,
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Role:      domain.RoleMember,
			JoinedAt:  row.JoinedAt,
		}
		if row.ID == collection.OwnerID {
			member.Role = domain.RoleOwner
		}
		if row.Birthday != nil {
			member.Birthday = row.Birthday.Format(domain.BirthdayFormat)
		}
		members = append(members, member)
	}
	return members, nil
}
