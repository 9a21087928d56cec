package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/teamwear/jersey-orders/internal/app/entity"
	"github.com/teamwear/jersey-orders/internal/app/model"
)

// Email check is syntactic only: something@something.something with no
// whitespace and a single @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Limits are the configurable field bounds for a submission.
// Jersey numbers are accepted on the inclusive [JerseyNumberMin, JerseyNumberMax]
// range; the shipped defaults are 0-500.
type Limits struct {
	JerseyNumberMin int
	JerseyNumberMax int
	NameMaxLength   int
}

// ValidateSubmission checks a raw order submission against the field rules
// and returns a normalized draft. On failure it returns the names of every
// missing or invalid field, not just the first one.
func ValidateSubmission(req model.SubmitOrderRequest, limits Limits) (entity.OrderDraft, []string) {
	var invalid []string

	name := strings.TrimSpace(req.Name)
	if len(name) == 0 || utf8.RuneCountInString(name) > limits.NameMaxLength {
		invalid = append(invalid, "name")
	}

	studentID := strings.TrimSpace(req.StudentID)
	if len(studentID) == 0 {
		invalid = append(invalid, "studentId")
	}

	if req.JerseyNumber == nil || *req.JerseyNumber < limits.JerseyNumberMin || *req.JerseyNumber > limits.JerseyNumberMax {
		invalid = append(invalid, "jerseyNumber")
	}

	size := strings.TrimSpace(req.Size)
	if len(size) == 0 {
		invalid = append(invalid, "size")
	}

	collarType := strings.TrimSpace(req.CollarType)
	if len(collarType) == 0 {
		invalid = append(invalid, "collarType")
	}

	sleeveType := strings.TrimSpace(req.SleeveType)
	if len(sleeveType) == 0 {
		invalid = append(invalid, "sleeveType")
	}

	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		invalid = append(invalid, "email")
	}

	if req.FinalPrice == nil || *req.FinalPrice < 0 {
		invalid = append(invalid, "finalPrice")
	}

	if len(invalid) != 0 {
		return entity.OrderDraft{}, invalid
	}

	draft := entity.OrderDraft{
		Name:          name,
		StudentID:     studentID,
		JerseyNumber:  *req.JerseyNumber,
		Size:          size,
		CollarType:    collarType,
		SleeveType:    sleeveType,
		Email:         email,
		Batch:         normalizeOptional(req.Batch),
		TransactionID: normalizeOptional(req.TransactionID),
		Notes:         normalizeOptional(req.Notes),
		FinalPrice:    *req.FinalPrice,
	}

	return draft, nil
}

// normalizeOptional trims an optional field and maps an empty result to an
// explicit absent marker so empty strings never reach the storage.
func normalizeOptional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return nil
	}

	return &trimmed
}

func ValidateLoginRequest(login model.LoginRequest) bool {
	return len(login.Username) > 0 && len(login.Password) > 0
}
