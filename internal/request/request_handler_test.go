package request_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sahl/internal/access"
	"sahl/internal/request"
	requesterrors "sahl/internal/request/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeRequestService struct {
	createFn  func(ctx context.Context, caller request.Caller, req request.CreateRequestRequest) (*request.RequestResponse, error)
	getByIDFn func(ctx context.Context, caller request.Caller, id string) (*request.RequestResponse, error)
	getAllFn  func(ctx context.Context, caller request.Caller) ([]request.RequestResponse, error)
	reviewFn  func(ctx context.Context, caller request.Caller, id string, input request.ReviewRequestRequest) (*request.RequestResponse, error)
	approveFn func(ctx context.Context, caller request.Caller, id string, input request.ReviewRequestRequest) (*request.RequestResponse, error)
	rejectFn  func(ctx context.Context, caller request.Caller, id string, input request.ReviewRequestRequest) (*request.RequestResponse, error)
}

func (f *fakeRequestService) Create(ctx context.Context, caller request.Caller, req request.CreateRequestRequest) (*request.RequestResponse, error) {
	return f.createFn(ctx, caller, req)
}

func (f *fakeRequestService) GetByID(ctx context.Context, caller request.Caller, id string) (*request.RequestResponse, error) {
	return f.getByIDFn(ctx, caller, id)
}

func (f *fakeRequestService) GetAll(ctx context.Context, caller request.Caller) ([]request.RequestResponse, error) {
	return f.getAllFn(ctx, caller)
}

func (f *fakeRequestService) Review(ctx context.Context, caller request.Caller, id string, input request.ReviewRequestRequest) (*request.RequestResponse, error) {
	return f.reviewFn(ctx, caller, id, input)
}

func (f *fakeRequestService) Approve(ctx context.Context, caller request.Caller, id string, input request.ReviewRequestRequest) (*request.RequestResponse, error) {
	return f.approveFn(ctx, caller, id, input)
}

func (f *fakeRequestService) Reject(ctx context.Context, caller request.Caller, id string, input request.ReviewRequestRequest) (*request.RequestResponse, error) {
	return f.rejectFn(ctx, caller, id, input)
}

func newTestContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", uuid.New().String())
	c.Set("branch_id", uuid.New().String())
	c.Set("role", access.RoleAdmin)
	return c, w
}

func TestRequestHandler_Approve(t *testing.T) {
	t.Run("approving an approved request returns 400 with invalid state code", func(t *testing.T) {
		svc := &fakeRequestService{
			approveFn: func(ctx context.Context, caller request.Caller, id string, input request.ReviewRequestRequest) (*request.RequestResponse, error) {
				return nil, requesterrors.ErrInvalidTransition
			},
		}
		h := request.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/requests/abc/approve", "")
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})

	t.Run("unknown request returns 404", func(t *testing.T) {
		svc := &fakeRequestService{
			approveFn: func(ctx context.Context, caller request.Caller, id string, input request.ReviewRequestRequest) (*request.RequestResponse, error) {
				return nil, requesterrors.ErrRequestNotFound
			},
		}
		h := request.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/requests/abc/approve", "")
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

		h.Approve(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success returns the reviewed request", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeRequestService{
			approveFn: func(ctx context.Context, caller request.Caller, got string, input request.ReviewRequestRequest) (*request.RequestResponse, error) {
				assert.Equal(t, id, got)
				assert.Equal(t, "approved after review", input.AdminNote)
				return &request.RequestResponse{ID: got, Status: request.StatusApproved}, nil
			},
		}
		h := request.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/requests/"+id+"/approve", `{"admin_note":"approved after review"}`)
		c.Params = gin.Params{{Key: "id", Value: id}}

		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got request.RequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, request.StatusApproved, got.Status)
	})
}

func TestRequestHandler_GetAll(t *testing.T) {
	t.Run("paginates with default page size", func(t *testing.T) {
		items := make([]request.RequestResponse, 0, 15)
		for i := 0; i < 15; i++ {
			items = append(items, request.RequestResponse{ID: uuid.New().String()})
		}
		svc := &fakeRequestService{
			getAllFn: func(ctx context.Context, caller request.Caller) ([]request.RequestResponse, error) {
				return items, nil
			},
		}
		h := request.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/requests", "")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got []request.RequestResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 10)
	})
}
