package service

import (
	"github.com/deppfellow/customer-api/internal/repository"
	"github.com/deppfellow/customer-api/internal/server"
)

type Services struct {
	Customer *CustomerService
	Probe    *ProbeService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	probe, err := NewProbeService(s.Config.Probe, nil)
	if err != nil {
		return nil, err
	}

	return &Services{
		Customer: NewCustomerService(repos.Customer),
		Probe:    probe,
	}, nil
}
