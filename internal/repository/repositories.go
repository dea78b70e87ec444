// Package repository handles all interactions with the database.
//
// A schema driven Adapter builds and runs the SQL; typed repositories on top
// of it hand records to the service layer.
package repository

import (
	"github.com/deppfellow/customer-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Customer *CustomerRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Customer: NewCustomerRepository(s.DB.Pool),
	}
}
