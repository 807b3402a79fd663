package service

import (
	"context"
	"fmt"
	"strings"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/user/model"
	"frontdesk/internal/domains/user/model/dto"
	"frontdesk/internal/domains/user/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	sharedModel "frontdesk/shared/model"
	"frontdesk/shared/password"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type User interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Deactivate(ctx context.Context, id string) error
	EnsureAdmin(ctx context.Context) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyGetAll, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(users, total, req.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyCount, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	user, ok := s.repo.GetByID(ctx, id)
	if !ok {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

// Deactivate blocks future logins. Already issued tokens stay valid until
// they expire.
func (s *serviceImpl) Deactivate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deactivate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := shared.ActorFromContext(ctx)

	if actor == id {
		return failure.Conflict("cannot deactivate your own account") // nolint:wrapcheck
	}

	if _, ok := s.repo.GetByID(ctx, id); !ok {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldActive:         false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("userID", id).Msg("failed to deactivate user")

		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

// EnsureAdmin seeds the configured administrator when no account owns that
// email yet. Without configured credentials it does nothing.
func (s *serviceImpl) EnsureAdmin(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureAdmin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := strings.ToLower(strings.TrimSpace(s.cfg.App.Admin.Email))
	if email == "" || s.cfg.App.Admin.Password == "" {
		log.Warn().Msg("admin credentials not configured, skipping admin seed")

		return nil
	}

	exist, err := s.repo.Exist(ctx, repository.ByEmail(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check admin existence")

		return fmt.Errorf("failed to check admin existence: %w", err)
	}

	if exist {
		return nil
	}

	hashed, err := password.Hash(s.cfg.App.Admin.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password")

		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashed,
		Role:     constant.RoleAdmin,
		FullName: s.cfg.App.Admin.FullName,
		Active:   true,
		Metadata: sharedModel.NewMetadata(constant.ContextSystem, timezone.Now()),
	}

	if err = s.repo.Insert(ctx, admin); err != nil {
		log.Error().Err(err).Msg("failed to seed admin")

		return fmt.Errorf("failed to seed admin: %w", err)
	}

	log.Info().Str("email", email).Msg("seeded administrator account")

	go s.invalidate(context.WithoutCancel(ctx), admin.ID)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(model.CacheKeyGet, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete user cache")
	}

	shared.InvalidateCaches(ctx, s.cache, model.CacheKeyGetAll)
	shared.InvalidateCaches(ctx, s.cache, model.CacheKeyCount)
}
