package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"shopledger/internal/dto"
	"shopledger/internal/model"
	"shopledger/internal/repository"

	"gorm.io/gorm"
)

type CustomerService interface {
	AddCustomer(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, id uint, req dto.CustomerRequest) (*dto.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id uint) error
	GetCustomer(ctx context.Context, id uint) (*dto.CustomerResponse, error)
	ListCustomers(ctx context.Context, search string) ([]dto.CustomerResponse, error)
}

type customerService struct {
	repo repository.CustomerRepository
	dues DuesService
}

func NewCustomerService(repo repository.CustomerRepository, dues DuesService) CustomerService {
	return &customerService{repo: repo, dues: dues}
}

func validateCustomer(req dto.CustomerRequest) (*model.Customer, error) {
	c := &model.Customer{
		FullName:       strings.TrimSpace(req.FullName),
		WhatsappNumber: strings.TrimSpace(req.WhatsappNumber),
		PhoneNumber:    strings.TrimSpace(req.PhoneNumber),
		Address:        strings.TrimSpace(req.Address),
	}
	if c.FullName == "" || c.WhatsappNumber == "" || c.PhoneNumber == "" || c.Address == "" {
		return nil, invalidf("all customer fields are required")
	}
	return c, nil
}

func (s *customerService) AddCustomer(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := validateCustomer(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uint, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	merged, err := validateCustomer(req)
	if err != nil {
		return nil, err
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	// Sales and payments are linked by name. Renaming a customer who still
	// owes money would orphan that linkage, so the rename is refused until
	// the balance is settled.
	if !strings.EqualFold(merged.FullName, current.FullName) {
		remaining, err := s.dues.CustomerDuesByName(ctx, current.FullName)
		if err != nil {
			return nil, err
		}
		if remaining.IsPositive() {
			return nil, invalidf("cannot rename customer %q while an outstanding due of %s exists", current.FullName, remaining.String())
		}
	}

	current.FullName = merged.FullName
	current.WhatsappNumber = merged.WhatsappNumber
	current.PhoneNumber = merged.PhoneNumber
	current.Address = merged.Address
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return customerToResponse(current), nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *customerService) ListCustomers(ctx context.Context, search string) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *customerToResponse(&customers[i]))
	}
	return out, nil
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		FullName:       c.FullName,
		WhatsappNumber: c.WhatsappNumber,
		PhoneNumber:    c.PhoneNumber,
		Address:        c.Address,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}
