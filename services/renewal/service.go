package renewal

import (
	"github.com/ethereum/go-ethereum/rpc"
)

// Service exposes the renewal API over JSON-RPC.
type Service struct {
	api *API
}

func NewService(api *API) *Service {
	return &Service{api: api}
}

// APIs returns list of available RPC APIs.
func (s *Service) APIs() []rpc.API {
	return []rpc.API{
		{
			Namespace: "renewal",
			Version:   "0.1.0",
			Service:   s.api,
		},
	}
}

// Start a service.
func (s *Service) Start() error {
	return nil
}

// Stop a service.
func (s *Service) Stop() error {
	return nil
}
