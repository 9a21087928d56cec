package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamwear/jersey-orders/internal/app/model"
)

var testLimits = Limits{
	JerseyNumberMin: 0,
	JerseyNumberMax: 500,
	NameMaxLength:   40,
}

func validRequest() model.SubmitOrderRequest {
	number := 7
	price := 25.50

	return model.SubmitOrderRequest{
		Name:         "Alice",
		StudentID:    "S-100200",
		JerseyNumber: &number,
		Size:         "M",
		CollarType:   "round",
		SleeveType:   "short",
		Email:        "alice@example.edu",
		FinalPrice:   &price,
	}
}

func TestValidateSubmission(t *testing.T) {
	type want struct {
		invalidFields []string
	}
	tests := []struct {
		name    string
		mutate  func(req *model.SubmitOrderRequest)

		want want
	}{
		{
			name:   "valid submission",
			mutate: func(req *model.SubmitOrderRequest) {},

			want: want{},
		},
		{
			name: "empty name",
			mutate: func(req *model.SubmitOrderRequest) {
				req.Name = "   "
			},

			want: want{
				invalidFields: []string{"name"},
			},
		},
		{
			name: "name over limit",
			mutate: func(req *model.SubmitOrderRequest) {
				req.Name = "Wolfeschlegelsteinhausenbergerdorffsenberg"
			},

			want: want{
				invalidFields: []string{"name"},
			},
		},
		{
			// 25 characters but 48 bytes: the cap counts characters.
			name: "multibyte name within limit",
			mutate: func(req *model.SubmitOrderRequest) {
				req.Name = "Александра Константинова!"
			},

			want: want{},
		},
		{
			name: "multibyte name over limit",
			mutate: func(req *model.SubmitOrderRequest) {
				req.Name = "Александра Константинова Александра Конст"
			},

			want: want{
				invalidFields: []string{"name"},
			},
		},
		{
			name: "missing jersey number",
			mutate: func(req *model.SubmitOrderRequest) {
				req.JerseyNumber = nil
			},

			want: want{
				invalidFields: []string{"jerseyNumber"},
			},
		},
		{
			name: "jersey number below lower bound",
			mutate: func(req *model.SubmitOrderRequest) {
				number := testLimits.JerseyNumberMin - 1
				req.JerseyNumber = &number
			},

			want: want{
				invalidFields: []string{"jerseyNumber"},
			},
		},
		{
			name: "jersey number above upper bound",
			mutate: func(req *model.SubmitOrderRequest) {
				number := testLimits.JerseyNumberMax + 1
				req.JerseyNumber = &number
			},

			want: want{
				invalidFields: []string{"jerseyNumber"},
			},
		},
		{
			name: "email without at sign",
			mutate: func(req *model.SubmitOrderRequest) {
				req.Email = "alice.example.edu"
			},

			want: want{
				invalidFields: []string{"email"},
			},
		},
		{
			name: "email without dot in domain",
			mutate: func(req *model.SubmitOrderRequest) {
				req.Email = "alice@example"
			},

			want: want{
				invalidFields: []string{"email"},
			},
		},
		{
			name: "email with whitespace",
			mutate: func(req *model.SubmitOrderRequest) {
				req.Email = "alice smith@example.edu"
			},

			want: want{
				invalidFields: []string{"email"},
			},
		},
		{
			name: "negative price",
			mutate: func(req *model.SubmitOrderRequest) {
				price := -1.0
				req.FinalPrice = &price
			},

			want: want{
				invalidFields: []string{"finalPrice"},
			},
		},
		{
			name: "all fields missing are reported together",
			mutate: func(req *model.SubmitOrderRequest) {
				*req = model.SubmitOrderRequest{}
			},

			want: want{
				invalidFields: []string{"name", "studentId", "jerseyNumber", "size", "collarType", "sleeveType", "email", "finalPrice"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := validRequest()
			test.mutate(&request)

			_, invalidFields := ValidateSubmission(request, testLimits)

			assert.Equal(t, test.want.invalidFields, invalidFields)
		})
	}
}

func TestValidateSubmissionBoundaryNumbers(t *testing.T) {
	for _, number := range []int{testLimits.JerseyNumberMin, testLimits.JerseyNumberMax} {
		request := validRequest()
		request.JerseyNumber = &number

		draft, invalidFields := ValidateSubmission(request, testLimits)

		require.Empty(t, invalidFields)
		assert.Equal(t, number, draft.JerseyNumber)
	}
}

func TestValidateSubmissionNormalization(t *testing.T) {
	request := validRequest()
	request.Name = "  Alice  "
	request.Batch = "  2026  "
	request.TransactionID = "   "
	request.Notes = ""

	draft, invalidFields := ValidateSubmission(request, testLimits)

	require.Empty(t, invalidFields)
	assert.Equal(t, "Alice", draft.Name)
	require.NotNil(t, draft.Batch)
	assert.Equal(t, "2026", *draft.Batch)
	assert.Nil(t, draft.TransactionID)
	assert.Nil(t, draft.Notes)
}

func TestValidateLoginRequest(t *testing.T) {
	assert.True(t, ValidateLoginRequest(model.LoginRequest{Username: "staff", Password: "secret"}))
	assert.False(t, ValidateLoginRequest(model.LoginRequest{Username: "staff"}))
	assert.False(t, ValidateLoginRequest(model.LoginRequest{Password: "secret"}))
}
