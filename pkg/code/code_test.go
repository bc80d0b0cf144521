package code

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_WithArgs(t *testing.T) {
	e := ErrorMissingField.WithArgs("username")
	assert.Equal(t, "Missing 'username' in request body", e.Msg())
	assert.Equal(t, http.StatusUnprocessableEntity, e.StatusCode())
	// 原对象不受影响
	assert.Equal(t, "Missing '%s' in request body", ErrorMissingField.Msg())

	e = ErrorFieldTooShort.WithArgs("password", 8)
	assert.Equal(t, "Field: 'password' must be at least 8 characters long", e.Msg())
}

func TestCode_WithLocation(t *testing.T) {
	e := ErrorInvalidCredentials.WithLocation("password")
	assert.Equal(t, "password", e.Location())
	assert.Empty(t, ErrorInvalidCredentials.Location())
	assert.Equal(t, ErrorInvalidCredentials.Code(), e.Code())
}

func TestCode_Is(t *testing.T) {
	var err error = ErrorInvalidJWT.WithDetails("token expired")
	assert.True(t, errors.Is(err, ErrorInvalidJWT))
	assert.False(t, errors.Is(err, ErrorNoBearerToken))
}

func TestLang_Fallback(t *testing.T) {
	SetLang("zh_cn")
	defer SetLang("en")
	assert.Equal(t, "`id` 不合法", ErrorInvalidID.Msg())

	SetLang("fr")
	assert.Equal(t, "The `id` is not valid", ErrorInvalidID.Msg())
}
