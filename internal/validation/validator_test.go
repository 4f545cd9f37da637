package validation_test

import (
	"net/http"
	"testing"

	domainerrors "github.com/giftwiseapp/giftwise-server/internal/errors"
	"github.com/giftwiseapp/giftwise-server/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createProfileRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	Age             *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	LongDescription string `json:"long_description,omitempty" validate:"omitempty,max=4000"`
}

func TestValidatePasses(t *testing.T) {
	v := validation.New()

	age := 30
	err := v.Validate(createProfileRequest{Name: "Alex", Age: &age})
	assert.NoError(t, err)
}

func TestValidateRequiredField(t *testing.T) {
	v := validation.New()

	err := v.Validate(createProfileRequest{})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeInvalidInput, domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
	assert.Contains(t, domainErr.Message, "name is required")
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	v := validation.New()

	bad := -1
	err := v.Validate(createProfileRequest{Name: "Alex", Age: &bad})
	require.Error(t, err)

	// JSON tag name, not the Go field name.
	assert.Contains(t, err.Error(), "age")
	assert.NotContains(t, err.Error(), "Age ")
}
