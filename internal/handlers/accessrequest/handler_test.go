package accessrequest_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/accessrequest/model/dto"
	accessRequestMocks "frontdesk/internal/domains/accessrequest/mocks"
	userDto "frontdesk/internal/domains/user/model/dto"
	"frontdesk/internal/handlers/accessrequest"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *accessRequestMocks.MockAccessRequest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := accessRequestMocks.NewMockAccessRequest(ctrl)
	handler := accessrequest.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, service
}

func serve(router http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, body)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_Approve(t *testing.T) {
	tests := []struct {
		name     string
		body     io.Reader
		setup    func(service *accessRequestMocks.MockAccessRequest)
		wantCode int
	}{
		{
			name: "empty body keeps the requested role",
			body: nil,
			setup: func(service *accessRequestMocks.MockAccessRequest) {
				service.EXPECT().
					Approve(gomock.Any(), "ar1", dto.ApproveRequest{}).
					Return(userDto.UserResponse{ID: "u1", Email: "new@hotel.test", Role: "RECEPTIONIST"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "role override",
			body: strings.NewReader(`{"role":"MANAGER"}`),
			setup: func(service *accessRequestMocks.MockAccessRequest) {
				service.EXPECT().
					Approve(gomock.Any(), "ar1", dto.ApproveRequest{Role: "MANAGER"}).
					Return(userDto.UserResponse{ID: "u1", Email: "new@hotel.test", Role: "MANAGER"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "unknown role",
			body:     strings.NewReader(`{"role":"OWNER"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "request no longer pending",
			body: nil,
			setup: func(service *accessRequestMocks.MockAccessRequest) {
				service.EXPECT().
					Approve(gomock.Any(), "ar1", dto.ApproveRequest{}).
					Return(userDto.UserResponse{}, failure.Conflict("access request is not pending"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)

			if tt.setup != nil {
				tt.setup(service)
			}

			recorder := serve(router, http.MethodPost, "/access-requests/ar1/approve", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantCode == http.StatusCreated {
				assert.Equal(t, "u1", jsoniter.Get(recorder.Body.Bytes(), "data", "id").ToString())
			}
		})
	}
}

func TestHandler_Reject(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().Reject(gomock.Any(), "ar1", dto.RejectRequest{}).Return(nil)

	recorder := serve(router, http.MethodPost, "/access-requests/ar1/reject", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Access request rejected successfully", jsoniter.Get(recorder.Body.Bytes(), "message").ToString())
}

func TestHandler_Submit(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().
		Submit(gomock.Any(), dto.SubmitRequest{FullName: "Dewi", Email: "dewi@hotel.test"}).
		Return(dto.AccessRequestResponse{ID: "ar1", Status: "PENDING"}, nil)

	recorder := serve(router, http.MethodPost, "/access-requests",
		strings.NewReader(`{"full_name":"Dewi","email":"dewi@hotel.test"}`))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "PENDING", jsoniter.Get(recorder.Body.Bytes(), "data", "status").ToString())

	recorder = serve(router, http.MethodPost, "/access-requests", strings.NewReader(`{"full_name":"Dewi"}`))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
