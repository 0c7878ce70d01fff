package services

import (
	"errors"
	"fmt"

	"github.com/wedplan/marketplace-api/internal/models"
	"github.com/wedplan/marketplace-api/internal/storage"
)

// PortfolioService handles portfolio business logic.
type PortfolioService struct {
	portfolios storage.PortfolioStore
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(portfolios storage.PortfolioStore) *PortfolioService {
	return &PortfolioService{
		portfolios: portfolios,
	}
}

// CreatePortfolioInput represents input for creating a portfolio.
type CreatePortfolioInput struct {
	UserID      uint64
	Title       string
	Description string
	ImageURLs   []string
}

// Create creates a portfolio owned by the given user.
func (s *PortfolioService) Create(input CreatePortfolioInput) (*models.Portfolio, error) {
	portfolio := &models.Portfolio{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		ImageURLs:   input.ImageURLs,
	}

	if err := s.portfolios.CreatePortfolio(portfolio); err != nil {
		if errors.Is(err, storage.ErrForeignKey) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}
	return portfolio, nil
}

// ListByUser returns the portfolios owned by one user. An unknown user
// simply has no portfolios.
func (s *PortfolioService) ListByUser(userID uint64) ([]models.Portfolio, error) {
	portfolios, err := s.portfolios.ListPortfoliosByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return portfolios, nil
}
