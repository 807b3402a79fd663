package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/accessrequest/model"
	"frontdesk/internal/domains/accessrequest/model/dto"
	"frontdesk/internal/domains/accessrequest/repository"
	notificationModel "frontdesk/internal/domains/notification/model"
	notificationService "frontdesk/internal/domains/notification/service"
	userModel "frontdesk/internal/domains/user/model"
	userDto "frontdesk/internal/domains/user/model/dto"
	userRepo "frontdesk/internal/domains/user/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/keylock"
	sharedModel "frontdesk/shared/model"
	"frontdesk/shared/password"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const notFoundMessage = "access request not found"

type AccessRequest interface {
	Submit(ctx context.Context, req dto.SubmitRequest) (dto.AccessRequestResponse, error)
	RequestInfo(ctx context.Context, id string, req dto.RequestInfoRequest) (dto.AccessRequestResponse, error)
	RecordReply(ctx context.Context, id string, req dto.RecordReplyRequest) (dto.ReplyResponse, error)
	Approve(ctx context.Context, id string, req dto.ApproveRequest) (userDto.UserResponse, error)
	Reject(ctx context.Context, id string, req dto.RejectRequest) error
	Remove(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.AccessRequestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAccessRequestsResponse, error)
	ListReplies(ctx context.Context, id string) ([]dto.ReplyResponse, error)
}

type serviceImpl struct {
	repo       repository.AccessRequest
	replyRepo  repository.Reply
	userRepo   userRepo.User
	dispatcher notificationService.Dispatcher
	locks      *keylock.KeyedMutex
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.AccessRequest,
	replyRepo repository.Reply,
	userRepo userRepo.User,
	dispatcher notificationService.Dispatcher,
	locks *keylock.KeyedMutex,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) AccessRequest {
	return &serviceImpl{
		repo:       repo,
		replyRepo:  replyRepo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		locks:      locks,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRequest) (res dto.AccessRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	request := req.ToModel(submitter(ctx))

	unlock := s.locks.Lock(model.EmailLockKey(request.Email))
	defer unlock()

	taken, err := s.userRepo.Exist(ctx, userRepo.ByEmail(request.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user email")

		return res, fmt.Errorf("failed to check user email: %w", err)
	}

	if taken {
		return res, failure.Conflict("email already belongs to a user") // nolint:wrapcheck
	}

	pending, err := s.repo.Exist(ctx, byEmail(request.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check pending access requests")

		return res, fmt.Errorf("failed to check pending access requests: %w", err)
	}

	if pending {
		return res, failure.Conflict("an access request for this email is already pending") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create access request")

		return res, fmt.Errorf("failed to create access request: %w", err)
	}

	data := s.data(request)
	messages := []notificationModel.Message{s.email(notificationModel.TemplateAccessRequestReceived, request.Email, data)}
	messages = append(messages, s.adminAlerts(ctx, notificationModel.TemplateAccessRequestAlert, data)...)

	s.dispatcher.Dispatch(ctx, messages...)

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) RequestInfo(ctx context.Context, id string, req dto.RequestInfoRequest) (res dto.AccessRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestInfo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.locks.Lock(model.LockKey(id))
	defer unlock()

	request, err := s.active(ctx, id, model.StatusNeedsInfo)
	if err != nil {
		return res, err
	}

	request.Status = model.StatusNeedsInfo
	request.AdminNotes = req.Notes
	request.Touch(shared.ActorFromContext(ctx), timezone.Now())

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:         request.Status,
		model.FieldAdminNotes:     request.AdminNotes,
		constant.FieldModifiedAt: request.ModifiedAt,
		constant.FieldModifiedBy: request.ModifiedBy,
	}, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to request more information")

		return res, fmt.Errorf("failed to request more information: %w", err)
	}

	s.dispatcher.Dispatch(ctx, s.email(notificationModel.TemplateAccessRequestNeedsInfo, request.Email, s.data(request)))

	res.FromModel(request)

	return res, nil
}

// RecordReply always appends the reply, so duplicate inbound deliveries are
// kept as distinct records. Re-entering INFO_RECEIVED is a no-op.
func (s *serviceImpl) RecordReply(ctx context.Context, id string, req dto.RecordReplyRequest) (res dto.ReplyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordReply")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.locks.Lock(model.LockKey(id))
	defer unlock()

	request, err := s.active(ctx, id, model.StatusInfoReceived)
	if err != nil {
		return res, err
	}

	reply := req.ToModel(id)

	if err = s.replyRepo.Insert(ctx, reply); err != nil {
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to record reply")

		return res, fmt.Errorf("failed to record reply: %w", err)
	}

	if request.Status != model.StatusInfoReceived {
		err = s.repo.Update(ctx, map[string]any{
			model.FieldStatus:         model.StatusInfoReceived,
			constant.FieldModifiedAt: reply.ReceivedAt,
			constant.FieldModifiedBy: shared.ActorFromContext(ctx),
		}, shared.FilterByID(id, model.FieldID))
		if err != nil {
			log.Error().Err(err).Str("accessRequestID", id).Msg("failed to mark information received")

			return res, fmt.Errorf("failed to mark information received: %w", err)
		}
	}

	data := s.data(request)
	data[notificationModel.DataSubject] = reply.Subject
	data[notificationModel.DataBody] = reply.BodyText

	s.dispatcher.Dispatch(ctx, s.adminAlerts(ctx, notificationModel.TemplateAccessRequestReply, data)...)

	res.FromModel(reply)

	return res, nil
}

// Approve provisions the account and removes the request. When the email
// already has an account the request is removed and that account returned.
func (s *serviceImpl) Approve(ctx context.Context, id string, req dto.ApproveRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.locks.Lock(model.LockKey(id))
	defer unlock()

	request, err := s.active(ctx, id, model.StatusApproved)
	if err != nil {
		return res, err
	}

	// Always the request key before the email key. Submit only takes the email key.
	unlockEmail := s.locks.Lock(model.EmailLockKey(request.Email))
	defer unlockEmail()

	existing, err := s.userRepo.Get(ctx, userRepo.ByEmail(request.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check user email")

		return res, fmt.Errorf("failed to check user email: %w", err)
	}

	if existing.ID != "" {
		log.Warn().Str("accessRequestID", id).Str("userID", existing.ID).Msg("email already provisioned, closing access request")

		if err = s.remove(ctx, id); err != nil {
			return res, err
		}

		res.FromModel(existing)

		return res, nil
	}

	role := request.Role
	if req.Role != "" {
		role = req.Role
	}

	temporary, err := password.GenerateTemporary(password.TemporaryLength)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate temporary password")

		return res, fmt.Errorf("failed to generate temporary password: %w", err)
	}

	hashed, err := password.Hash(temporary)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash temporary password")

		return res, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	user := userModel.User{
		ID:                 uuid.NewString(),
		Email:              request.Email,
		Password:           hashed,
		Role:               role,
		FullName:           request.FullName,
		MustChangePassword: true,
		Active:             true,
		Metadata:           sharedModel.NewMetadata(shared.ActorFromContext(ctx), timezone.Now()),
	}

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	if err = s.remove(ctx, id); err != nil {
		if rerr := s.userRepo.Delete(ctx, shared.FilterByID(user.ID, userModel.FieldID)); rerr != nil {
			log.Error().Err(rerr).Str("userID", user.ID).Msg("failed to roll back provisioned user")
		}

		return res, err
	}

	go s.invalidateUsers(context.WithoutCancel(ctx))

	data := s.data(request)
	data[notificationModel.DataRole] = role
	data[notificationModel.DataTemporaryPassword] = temporary
	data[notificationModel.DataLoginURL] = s.cfg.App.LoginURL

	s.dispatcher.Dispatch(ctx, s.email(notificationModel.TemplateAccessRequestApproved, user.Email, data))

	log.Info().Str("accessRequestID", id).Str("userID", user.ID).Str("role", role).Msg("access request approved")

	res.FromModel(user)

	return res, nil
}

// Reject leaves a REJECTED marker before removing the request, so a failed
// removal still blocks further transitions.
func (s *serviceImpl) Reject(ctx context.Context, id string, req dto.RejectRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.locks.Lock(model.LockKey(id))
	defer unlock()

	request, err := s.active(ctx, id, model.StatusRejected)
	if err != nil {
		return err
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:         model.StatusRejected,
		model.FieldAdminNotes:     req.Notes,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.ActorFromContext(ctx),
	}, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to reject access request")

		return fmt.Errorf("failed to reject access request: %w", err)
	}

	if err = s.remove(ctx, id); err != nil {
		return err
	}

	data := s.data(request)
	data[notificationModel.DataNotes] = req.Notes

	s.dispatcher.Dispatch(ctx, s.email(notificationModel.TemplateAccessRequestRejected, request.Email, data))

	return nil
}

func (s *serviceImpl) Remove(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.locks.Lock(model.LockKey(id))
	defer unlock()

	if _, ok := s.repo.GetByID(ctx, id); !ok {
		return failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	return s.remove(ctx, id)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AccessRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	request, ok := s.repo.GetByID(ctx, id)
	if !ok {
		return res, failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAccessRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count access requests")

		return res, fmt.Errorf("failed to count access requests: %w", err)
	}

	requests, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get access requests")

		return res, fmt.Errorf("failed to get access requests: %w", err)
	}

	res.FromModels(requests, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) ListReplies(ctx context.Context, id string) (res []dto.ReplyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListReplies")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, ok := s.repo.GetByID(ctx, id); !ok {
		return nil, failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	replies, err := s.replyRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldReceivedAt, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldAccessRequestID, Operator: gDto.FilterOperatorEq, Value: id},
	}})
	if err != nil {
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to get replies")

		return nil, fmt.Errorf("failed to get replies: %w", err)
	}

	return dto.FromReplies(replies), nil
}

// active loads a request that may still move to next. Missing requests are
// not found; requests that cannot make the move conflict.
func (s *serviceImpl) active(ctx context.Context, id string, next model.Status) (model.AccessRequest, error) {
	request, ok := s.repo.GetByID(ctx, id)
	if !ok {
		return request, failure.NotFound(notFoundMessage) // nolint:wrapcheck
	}

	if request.Status.Terminal() {
		return request, failure.Conflict(fmt.Sprintf("access request is already %s", request.Status)) // nolint:wrapcheck
	}

	if !model.CanTransition(request.Status, next) {
		return request, failure.Conflict(fmt.Sprintf("access request is %s and cannot move to %s", request.Status, next)) // nolint:wrapcheck
	}

	return request, nil
}

func (s *serviceImpl) remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID)); err != nil {
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to remove access request")

		return fmt.Errorf("failed to remove access request: %w", err)
	}

	return nil
}

func (s *serviceImpl) data(request model.AccessRequest) map[string]string {
	return map[string]string{
		notificationModel.DataAppName:   s.cfg.App.Name,
		notificationModel.DataRequestID: request.ID,
		notificationModel.DataFullName:  request.FullName,
		notificationModel.DataEmail:     request.Email,
		notificationModel.DataCompany:   request.Company,
		notificationModel.DataRole:      request.Role,
		notificationModel.DataMessage:   request.Message,
		notificationModel.DataNotes:     request.AdminNotes,
	}
}

func (s *serviceImpl) email(template notificationModel.Template, to string, data map[string]string) notificationModel.Message {
	return notificationModel.Message{
		Template:  template,
		Channel:   notificationModel.ChannelEmail,
		Recipient: to,
		Data:      data,
	}
}

// adminAlerts addresses the configured administrator emails, or every active
// admin account when none are configured, plus the configured phones.
func (s *serviceImpl) adminAlerts(ctx context.Context, template notificationModel.Template, data map[string]string) []notificationModel.Message {
	emails := s.cfg.Notification.AdminEmails

	if len(emails) == 0 {
		admins, err := s.userRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{Filters: []any{
			gDto.Filter{Field: userModel.FieldRole, Operator: gDto.FilterOperatorEq, Value: constant.RoleAdmin},
			gDto.Filter{Field: userModel.FieldActive, Operator: gDto.FilterOperatorEq, Value: true},
		}})
		if err != nil {
			log.Error().Err(err).Msg("failed to look up admin recipients")
		}

		for _, admin := range admins {
			emails = append(emails, admin.Email)
		}
	}

	messages := make([]notificationModel.Message, 0, len(emails)+len(s.cfg.Notification.AdminPhones))

	for _, to := range emails {
		messages = append(messages, s.email(template, to, data))
	}

	for _, to := range s.cfg.Notification.AdminPhones {
		messages = append(messages, notificationModel.Message{
			Template:  template,
			Channel:   notificationModel.ChannelSMS,
			Recipient: to,
			Data:      data,
		})
	}

	return messages
}

func (s *serviceImpl) invalidateUsers(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, userModel.CacheKeyGetAll)
	shared.InvalidateCaches(ctx, s.cache, userModel.CacheKeyCount)
}

func byEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: email},
	}}
}

// submitter is the signed-in user when an administrator files the request,
// otherwise the anonymous guest.
func submitter(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != "" {
		return user
	}

	return constant.ContextGuest
}
