package services

import (
	"errors"
	"fmt"

	"github.com/wedplan/marketplace-api/internal/models"
	"github.com/wedplan/marketplace-api/internal/storage"
)

var ErrNotABusiness = errors.New("inquiries can only be sent to business accounts")

// Notifier pushes a payload to a connected user. Delivery is best-effort;
// implementations must not block on absent receivers.
type Notifier interface {
	Notify(userID uint64, payload interface{})
}

// InquiryService handles business inquiry logic.
type InquiryService struct {
	inquiries storage.InquiryStore
	users     storage.UserStore
	notifier  Notifier
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(inquiries storage.InquiryStore, users storage.UserStore, notifier Notifier) *InquiryService {
	return &InquiryService{
		inquiries: inquiries,
		users:     users,
		notifier:  notifier,
	}
}

// Send creates an inquiry from the caller to a business account and
// notifies the recipient if they are connected.
func (s *InquiryService) Send(fromUserID, toUserID uint64, message string) (*models.BusinessInquiry, error) {
	recipient, err := s.users.GetUser(toUserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}
	if !recipient.Role.IsBusiness() {
		return nil, ErrNotABusiness
	}

	inquiry := &models.BusinessInquiry{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Message:    message,
	}

	if err := s.inquiries.CreateInquiry(inquiry); err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Notify(toUserID, map[string]interface{}{
			"type":    "inquiry",
			"inquiry": inquiry,
		})
	}

	return inquiry, nil
}

// ListForUser returns every inquiry the user sent or received, in
// ascending ID order.
func (s *InquiryService) ListForUser(userID uint64) ([]models.BusinessInquiry, error) {
	inquiries, err := s.inquiries.ListInquiriesByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}
