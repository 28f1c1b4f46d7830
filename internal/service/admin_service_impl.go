package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ArtytL/loh2-site/config"
	"github.com/ArtytL/loh2-site/internal/auth"
	"github.com/ArtytL/loh2-site/internal/dto"
	"github.com/ArtytL/loh2-site/pkg/errs"
)

type AdminServiceImpl struct {
	gate   *auth.JWTGate
	config *config.Config
}

func CreateAdminService(gate *auth.JWTGate, config *config.Config) AdminService {
	return &AdminServiceImpl{gate: gate, config: config}
}

func (s *AdminServiceImpl) Login(ctx context.Context, req dto.AdminLoginRequest) (resp dto.AdminLoginResponse, err error) {
	if req.Email != s.config.AdminEmail || req.Password != s.config.AdminPassword {
		return resp, errs.ErrInvalidCredentials
	}

	token, err := s.gate.IssueToken(req.Email)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInternalServer
	}

	resp.Token = token
	return resp, nil
}
