package leave_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	leaveMock "go-leave/internal/leave/mock"
	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeLeaveService struct {
	OpenFn          func(ctx context.Context) (leave.FormResponse, error)
	GetFn           func(ctx context.Context, formID string) (leave.FormResponse, error)
	UpdateFieldFn   func(ctx context.Context, formID, name, value string) (leave.FormResponse, error)
	SubmitFn        func(ctx context.Context, formID string, req *leave.SubmitLeaveRequest) (leave.SubmitResponse, error)
	ToggleDetailsFn func(ctx context.Context, formID string) (leave.FormResponse, error)
	CloseFn         func(ctx context.Context, formID string) error
}

func (f *fakeLeaveService) Open(ctx context.Context) (leave.FormResponse, error) {
	return f.OpenFn(ctx)
}
func (f *fakeLeaveService) Get(ctx context.Context, formID string) (leave.FormResponse, error) {
	return f.GetFn(ctx, formID)
}
func (f *fakeLeaveService) UpdateField(ctx context.Context, formID, name, value string) (leave.FormResponse, error) {
	return f.UpdateFieldFn(ctx, formID, name, value)
}
func (f *fakeLeaveService) Submit(ctx context.Context, formID string, req *leave.SubmitLeaveRequest) (leave.SubmitResponse, error) {
	return f.SubmitFn(ctx, formID, req)
}
func (f *fakeLeaveService) ToggleDetails(ctx context.Context, formID string) (leave.FormResponse, error) {
	return f.ToggleDetailsFn(ctx, formID)
}
func (f *fakeLeaveService) Close(ctx context.Context, formID string) error {
	return f.CloseFn(ctx, formID)
}
func (f *fakeLeaveService) RunSweeper(ctx context.Context, interval time.Duration) {}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func setupLeaveRouter(svc leave.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	leave.RegisterRoutes(r.Group("/api/v1"), leave.NewHandler(svc))
	return r
}

func TestLeaveHandler_Open(t *testing.T) {
	formID := uuid.New().String()
	svc := &fakeLeaveService{
		OpenFn: func(ctx context.Context) (leave.FormResponse, error) {
			return leave.FormResponse{
				ID:       formID,
				Overview: leave.OverviewResponse{TotalLeaves: 20, RemainingLeaves: 20},
			}, nil
		},
	}

	h := leave.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/leave-forms", nil)

	h.Open(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.OK)
	var form leave.FormResponse
	assert.NoError(t, json.Unmarshal(env.Data, &form))
	assert.Equal(t, formID, form.ID)
	assert.Equal(t, 20, form.Overview.RemainingLeaves)
}

func TestLeaveHandler_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		formID := uuid.New().String()
		svc := &fakeLeaveService{
			GetFn: func(ctx context.Context, id string) (leave.FormResponse, error) {
				assert.Equal(t, formID, id)
				return leave.FormResponse{ID: id}, nil
			},
		}

		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leave-forms/"+formID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), formID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeLeaveService{
			GetFn: func(ctx context.Context, id string) (leave.FormResponse, error) {
				return leave.FormResponse{}, leaveerrors.ErrFormNotFound
			},
		}

		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leave-forms/unknown", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.OK)
		assert.Equal(t, apperror.CodeNotFound, env.Error.Code)
	})
}

func TestLeaveHandler_UpdateField(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		formID := uuid.New().String()
		svc := &fakeLeaveService{
			UpdateFieldFn: func(ctx context.Context, id, name, value string) (leave.FormResponse, error) {
				assert.Equal(t, formID, id)
				assert.Equal(t, "startDate", name)
				assert.Equal(t, "2024-01-01", value)
				return leave.FormResponse{ID: id, Draft: leave.DraftResponse{StartDate: value}}, nil
			},
		}

		body := `{"name":"startDate","value":"2024-01-01"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/leave-forms/"+formID+"/fields", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"start_date":"2024-01-01"`)
	})

	t.Run("unknown field name fails validation", func(t *testing.T) {
		// service tidak boleh terpanggil
		svc := &fakeLeaveService{}

		body := `{"name":"status","value":"Approved"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/leave-forms/"+uuid.New().String()+"/fields", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeValidationError)
	})

	t.Run("missing name", func(t *testing.T) {
		svc := &fakeLeaveService{}

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/leave-forms/"+uuid.New().String()+"/fields", strings.NewReader(`{"value":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_Submit(t *testing.T) {
	t.Run("without body submits current draft", func(t *testing.T) {
		formID := uuid.New().String()
		svc := &fakeLeaveService{
			SubmitFn: func(ctx context.Context, id string, req *leave.SubmitLeaveRequest) (leave.SubmitResponse, error) {
				assert.Equal(t, formID, id)
				assert.Nil(t, req)
				return leave.SubmitResponse{
					Leave:            leave.LeaveResponse{LeaveDays: 1, Status: "Pending"},
					NotificationSent: true,
					Message:          leave.MessageNotificationSent,
				}, nil
			},
		}

		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leave-forms/"+formID+"/submit", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), leave.MessageNotificationSent)
	})

	t.Run("body fields are forwarded", func(t *testing.T) {
		svc := &fakeLeaveService{
			SubmitFn: func(ctx context.Context, id string, req *leave.SubmitLeaveRequest) (leave.SubmitResponse, error) {
				if assert.NotNil(t, req) {
					assert.Equal(t, "2024-01-01", *req.StartDate)
					assert.Equal(t, "casual", *req.LeaveType)
					assert.Nil(t, req.Reason)
				}
				return leave.SubmitResponse{}, nil
			},
		}

		body := `{"start_date":"2024-01-01","end_date":"2024-01-01","leave_type":"casual"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave-forms/"+uuid.New().String()+"/submit", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid period", func(t *testing.T) {
		svc := &fakeLeaveService{
			SubmitFn: func(ctx context.Context, id string, req *leave.SubmitLeaveRequest) (leave.SubmitResponse, error) {
				return leave.SubmitResponse{}, leaveerrors.ErrInvalidLeavePeriod
			},
		}

		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leave-forms/"+uuid.New().String()+"/submit", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid leave period")
	})

	t.Run("notification failure is still created", func(t *testing.T) {
		svc := &fakeLeaveService{
			SubmitFn: func(ctx context.Context, id string, req *leave.SubmitLeaveRequest) (leave.SubmitResponse, error) {
				return leave.SubmitResponse{
					Leave:            leave.LeaveResponse{Status: "Pending"},
					NotificationSent: false,
					Message:          leave.MessageNotificationFailed,
				}, nil
			},
		}

		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leave-forms/"+uuid.New().String()+"/submit", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"notification_sent":false`)
		assert.Contains(t, w.Body.String(), leave.MessageNotificationFailed)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &fakeLeaveService{}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave-forms/"+uuid.New().String()+"/submit", strings.NewReader(`{"start_date":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc := &fakeLeaveService{
			SubmitFn: func(ctx context.Context, id string, req *leave.SubmitLeaveRequest) (leave.SubmitResponse, error) {
				return leave.SubmitResponse{}, errors.New("boom")
			},
		}

		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leave-forms/"+uuid.New().String()+"/submit", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLeaveHandler_ToggleDetails(t *testing.T) {
	svc := &fakeLeaveService{
		ToggleDetailsFn: func(ctx context.Context, id string) (leave.FormResponse, error) {
			return leave.FormResponse{ID: id, ShowDetails: true}, nil
		},
	}

	w := httptest.NewRecorder()
	setupLeaveRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leave-forms/"+uuid.New().String()+"/details/toggle", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"show_details":true`)
}

func TestLeaveHandler_Close(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			CloseFn: func(ctx context.Context, id string) error { return nil },
		}

		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/leave-forms/"+uuid.New().String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"closed":true`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeLeaveService{
			CloseFn: func(ctx context.Context, id string) error { return leaveerrors.ErrFormNotFound },
		}

		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/leave-forms/"+uuid.New().String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLeaveHandler_SubmitBodyWithoutContentLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	formID := uuid.New().String()

	t.Run("chunked body is bound", func(t *testing.T) {
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().
			Submit(gomock.Any(), formID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string, req *leave.SubmitLeaveRequest) (leave.SubmitResponse, error) {
				if assert.NotNil(t, req) && assert.NotNil(t, req.LeaveType) {
					assert.Equal(t, "sick", *req.LeaveType)
				}
				return leave.SubmitResponse{Message: leave.MessageNotificationSent}, nil
			})

		// MultiReader membuat ContentLength tidak diketahui (-1)
		body := io.MultiReader(strings.NewReader(`{"start_date":"2024-01-01","end_date":"2024-01-01","leave_type":"sick"}`))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave-forms/"+formID+"/submit", body)
		req.Header.Set("Content-Type", "application/json")
		assert.Equal(t, int64(-1), req.ContentLength)

		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("empty chunked body submits the draft", func(t *testing.T) {
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().
			Submit(gomock.Any(), formID, (*leave.SubmitLeaveRequest)(nil)).
			Return(leave.SubmitResponse{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave-forms/"+formID+"/submit", io.MultiReader())
		w := httptest.NewRecorder()
		setupLeaveRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
