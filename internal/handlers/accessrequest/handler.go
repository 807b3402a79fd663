package accessrequest

import (
	"net/http"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/accessrequest/model"
	"frontdesk/internal/domains/accessrequest/model/dto"
	"frontdesk/internal/domains/accessrequest/service"
	userDto "frontdesk/internal/domains/user/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.AccessRequest
	otel    otel.Otel
}

func New(service service.AccessRequest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/access-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Submit)
		routerGroup.Get("/", handler.GetAccessRequests)
		routerGroup.Get("/{id}", handler.GetAccessRequestByID)
		routerGroup.Delete("/{id}", handler.Remove)
		routerGroup.Get("/{id}/replies", handler.ListReplies)
		routerGroup.Post("/{id}/replies", handler.RecordReply)
		routerGroup.Post("/{id}/request-info", handler.RequestInfo)
		routerGroup.Post("/{id}/approve", handler.Approve)
		routerGroup.Post("/{id}/reject", handler.Reject)
	})
}

// decode reads an optional JSON body. An empty body validates the zero value.
func decode[T any](request *http.Request, req *T) error {
	if request.ContentLength == 0 {
		return validator.ValidateStruct(req) //nolint:wrapcheck
	}

	return validator.Validate(request.Body, req) //nolint:wrapcheck
}

// Submit records a public request for a back-office account.
// @Summary Submit an access request
// @Description Anyone may ask for an account. Administrators are alerted and the requester receives a confirmation.
// @Tags AccessRequest
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Submit Request"
// @Success 201 {object} response.Data[dto.AccessRequestResponse] "Access request submitted"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-requests [post]
func (handler *Handler) Submit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitAccessRequest")
	defer scope.End()

	req := dto.SubmitRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit access request")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Access request submitted for " + res.Email)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetAccessRequests lists open access requests.
// @Summary Get access requests
// @Tags AccessRequest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (PENDING, NEEDS_INFO, INFO_RECEIVED)"
// @Param email query string false "Filter by email (partial match)"
// @Success 200 {object} response.Data[dto.GetAccessRequestsResponse] "List of access requests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-requests [get]
// @Security BearerAuth
func (handler *Handler) GetAccessRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccessRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    strings.ToUpper(status),
		})
	}

	if email := r.URL.Query().Get(model.FieldEmail); email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get access requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAccessRequestByID retrieves one access request.
// @Summary Get an access request
// @Tags AccessRequest
// @Produce json
// @Param id path string true "Access Request ID"
// @Success 200 {object} response.Data[dto.AccessRequestResponse] "Access request"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAccessRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAccessRequestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to get access request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Remove deletes an access request without notifying the requester.
// @Summary Remove an access request
// @Tags AccessRequest
// @Produce json
// @Param id path string true "Access Request ID"
// @Success 200 {object} response.Message "Access request removed"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-requests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveAccessRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Remove(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to remove access request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Access request removed by user " + shared.ActorFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Access request removed successfully")
}

// ListReplies returns the requester's replies, oldest first.
// @Summary List replies
// @Tags AccessRequest
// @Produce json
// @Param id path string true "Access Request ID"
// @Success 200 {object} response.Data[[]dto.ReplyResponse] "Replies"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-requests/{id}/replies [get]
// @Security BearerAuth
func (handler *Handler) ListReplies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListReplies")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ListReplies(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to list replies")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RecordReply stores an inbound reply from the requester. The mail relay
// calls this with the X-API-Key header.
// @Summary Record a reply
// @Tags AccessRequest
// @Accept json
// @Produce json
// @Param id path string true "Access Request ID"
// @Param request body dto.RecordReplyRequest true "Record Reply Request"
// @Success 201 {object} response.Data[dto.ReplyResponse] "Reply recorded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-requests/{id}/replies [post]
// @Security BearerAuth
// @Security ApiKeyAuth
func (handler *Handler) RecordReply(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordReply")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RecordReplyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RecordReply(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to record reply")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// RequestInfo asks the requester for more information.
// @Summary Request more information
// @Tags AccessRequest
// @Accept json
// @Produce json
// @Param id path string true "Access Request ID"
// @Param request body dto.RequestInfoRequest true "Request Info Request"
// @Success 200 {object} response.Data[dto.AccessRequestResponse] "Access request"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-requests/{id}/request-info [post]
// @Security BearerAuth
func (handler *Handler) RequestInfo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestInfo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RequestInfoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RequestInfo(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to request info")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("More information requested by user " + shared.ActorFromContext(ctx))

	response.WithJSON(w, http.StatusOK, res)
}

// Approve provisions a user account for the requester and removes the request.
// @Summary Approve an access request
// @Tags AccessRequest
// @Accept json
// @Produce json
// @Param id path string true "Access Request ID"
// @Param request body dto.ApproveRequest false "Approve Request"
// @Success 201 {object} response.Data[userDto.UserResponse] "Provisioned user"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-requests/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Approve")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ApproveRequest{}

	if err := decode(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	var res userDto.UserResponse

	res, err := handler.service.Approve(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to approve access request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Access request approved by user " + shared.ActorFromContext(ctx))

	response.WithJSON(w, http.StatusCreated, res)
}

// Reject declines the request, notifies the requester and removes it.
// @Summary Reject an access request
// @Tags AccessRequest
// @Accept json
// @Produce json
// @Param id path string true "Access Request ID"
// @Param request body dto.RejectRequest false "Reject Request"
// @Success 200 {object} response.Message "Access request rejected"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/access-requests/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reject")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RejectRequest{}

	if err := decode(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reject(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("accessRequestID", id).Msg("failed to reject access request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Access request rejected by user " + shared.ActorFromContext(ctx))

	response.WithMessage(w, http.StatusOK, "Access request rejected successfully")
}
