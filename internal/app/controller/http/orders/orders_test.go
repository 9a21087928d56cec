package orders

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamwear/jersey-orders/internal/app/controller/http/orders/mock"
	"github.com/teamwear/jersey-orders/internal/app/entity"
	"github.com/teamwear/jersey-orders/internal/app/model"
	err_storage "github.com/teamwear/jersey-orders/internal/app/storage/api/errors"
	"github.com/teamwear/jersey-orders/internal/app/validator"
)

var testLimits = validator.Limits{
	JerseyNumberMin: 0,
	JerseyNumberMax: 500,
	NameMaxLength:   40,
}

const validSubmission = `{
	"name": "Alice",
	"studentId": "S-100200",
	"jerseyNumber": 7,
	"size": "M",
	"collarType": "round",
	"sleeveType": "short",
	"email": "alice@example.edu",
	"finalPrice": 25.50
}`

func TestSubmitOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	persisted := entity.Order{
		ID:           42,
		Name:         "Alice",
		StudentID:    "S-100200",
		JerseyNumber: 7,
		Size:         "M",
		CollarType:   "round",
		SleeveType:   "short",
		Email:        "alice@example.edu",
		FinalPrice:   25.50,
		Status:       entity.StatusPending,
	}

	type want struct {
		statusCode   int
		orderID      string
		bodyContains []string
	}
	tests := []struct {
		name       string
		body       string
		setupMocks func(s *mock.MockOrderStorage, n *mock.MockNotifier)

		want want
	}{
		{
			name: "new order admitted",
			body: validSubmission,
			setupMocks: func(s *mock.MockOrderStorage, n *mock.MockNotifier) {
				s.EXPECT().FindOrderByJerseyNumber(gomock.Any(), 7).
					Return(entity.Order{}, err_storage.ErrOrderNotFound)
				s.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(persisted, nil)
				n.EXPECT().OrderCreated(persisted)
			},

			want: want{
				statusCode: http.StatusCreated,
				orderID:    "JSY-000042",
			},
		},
		{
			name: "jersey number conflict",
			body: validSubmission,
			setupMocks: func(s *mock.MockOrderStorage, n *mock.MockNotifier) {
				s.EXPECT().FindOrderByJerseyNumber(gomock.Any(), 7).
					Return(entity.Order{ID: 9, Name: "Bob", JerseyNumber: 7}, nil)
				s.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Times(0)
				n.EXPECT().OrderCreated(gomock.Any()).Times(0)
			},

			want: want{
				statusCode:   http.StatusConflict,
				bodyContains: []string{"7", "Bob"},
			},
		},
		{
			name: "missing fields",
			body: `{"name": "Alice"}`,
			setupMocks: func(s *mock.MockOrderStorage, n *mock.MockNotifier) {
				s.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Times(0)
				n.EXPECT().OrderCreated(gomock.Any()).Times(0)
			},

			want: want{
				statusCode:   http.StatusBadRequest,
				bodyContains: []string{"studentId", "jerseyNumber", "size", "collarType", "sleeveType", "email", "finalPrice"},
			},
		},
		{
			name: "malformed body",
			body: `{"name": `,
			setupMocks: func(s *mock.MockOrderStorage, n *mock.MockNotifier) {
				s.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Times(0)
				n.EXPECT().OrderCreated(gomock.Any()).Times(0)
			},

			want: want{
				statusCode:   http.StatusBadRequest,
				bodyContains: []string{ErrMalformedBody},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := mock.NewMockOrderStorage(ctrl)
			n := mock.NewMockNotifier(ctrl)
			test.setupMocks(s, n)

			request := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			handler := New(s, n, testLimits)
			handler.SubmitOrder()(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			if len(test.want.orderID) != 0 {
				var response model.SubmitOrderResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, test.want.orderID, response.OrderID)
				assert.Equal(t, string(entity.StatusPending), response.Status)
			}

			for _, fragment := range test.want.bodyContains {
				assert.Contains(t, string(body), fragment)
			}
		})
	}
}

func TestCheckJerseyNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type want struct {
		statusCode int
		available  bool
		message    []string
	}
	tests := []struct {
		name       string
		query      string
		setupMocks func(s *mock.MockOrderStorage)

		want want
	}{
		{
			name:  "number available",
			query: "number=7",
			setupMocks: func(s *mock.MockOrderStorage) {
				s.EXPECT().FindOrderByJerseyNumber(gomock.Any(), 7).
					Return(entity.Order{}, err_storage.ErrOrderNotFound)
			},

			want: want{
				statusCode: http.StatusOK,
				available:  true,
				message:    []string{"7", "available"},
			},
		},
		{
			name:  "number taken",
			query: "number=7",
			setupMocks: func(s *mock.MockOrderStorage) {
				s.EXPECT().FindOrderByJerseyNumber(gomock.Any(), 7).
					Return(entity.Order{ID: 1, Name: "Alice", JerseyNumber: 7}, nil)
			},

			want: want{
				statusCode: http.StatusOK,
				available:  false,
				message:    []string{"7", "Alice"},
			},
		},
		{
			name:       "non-numeric number",
			query:      "number=seven",
			setupMocks: func(s *mock.MockOrderStorage) {},

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := mock.NewMockOrderStorage(ctrl)
			n := mock.NewMockNotifier(ctrl)
			test.setupMocks(s)

			request := httptest.NewRequest(http.MethodGet, "/orders/check-jersey?"+test.query, nil)
			writer := httptest.NewRecorder()

			handler := New(s, n, testLimits)
			handler.CheckJerseyNumber()(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			if test.want.statusCode != http.StatusOK {
				return
			}

			var response model.JerseyCheckResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
			assert.Equal(t, test.want.available, response.Available)
			for _, fragment := range test.want.message {
				assert.Contains(t, response.Message, fragment)
			}
		})
	}
}

func TestCheckName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderStorage(ctrl)
	n := mock.NewMockNotifier(ctrl)
	handler := New(s, n, testLimits)

	// existence check is case-insensitive in storage, both spellings hit it
	for _, name := range []string{"Alice", "alice"} {
		s.EXPECT().OrderNameExists(gomock.Any(), name).Return(true, nil)

		request := httptest.NewRequest(http.MethodGet, "/orders/check-name?name="+name, nil)
		writer := httptest.NewRecorder()

		handler.CheckName()(writer, request)

		res := writer.Result()
		assert.Equal(t, http.StatusOK, res.StatusCode)

		var response model.NameCheckResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
		res.Body.Close()
		assert.True(t, response.Exists)
	}

	request := httptest.NewRequest(http.MethodGet, "/orders/check-name", nil)
	writer := httptest.NewRecorder()

	handler.CheckName()(writer, request)

	assert.Equal(t, http.StatusBadRequest, writer.Result().StatusCode)
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderStorage(ctrl)
	n := mock.NewMockNotifier(ctrl)
	handler := New(s, n, testLimits)

	s.EXPECT().Ping(gomock.Any()).Return(nil)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	writer := httptest.NewRecorder()

	handler.Health()(writer, request)

	res := writer.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response model.HealthResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "up", response.Database)
}
