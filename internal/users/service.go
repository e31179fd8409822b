package users

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/zoobzio/tidy"
)

// Service returns user payloads after their field policies have been applied.
type Service struct {
	log     zerolog.Logger
	process tidy.Operation[*UserDTO, *UserDTO]
}

// NewService creates a Service. Every call to GetProcessedDTO normalizes its
// argument before the service body sees it.
func NewService(log zerolog.Logger) *Service {
	s := &Service{log: log.With().Str("component", "users").Logger()}
	s.process = tidy.Intercept(s.getProcessedDTO)
	return s
}

// GetProcessedDTO returns dto with its fields normalized in place.
func (s *Service) GetProcessedDTO(ctx context.Context, dto *UserDTO) (*UserDTO, error) {
	return s.process(ctx, dto)
}

func (s *Service) getProcessedDTO(_ context.Context, dto *UserDTO) (*UserDTO, error) {
	if dto != nil {
		s.log.Debug().
			Str("full_name", dto.FullName).
			Bool("has_unique_id", dto.UniqueID != nil).
			Int("details_len", len(dto.UserDetails)).
			Msg("processed user")
	}
	return dto, nil
}
