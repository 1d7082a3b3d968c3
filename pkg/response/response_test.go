package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/stretchr/testify/require"
)

func TestFromError_AppError(t *testing.T) {
	status, body := FromError(fmt.Errorf("wrap: %w", apperr.Forbidden("Admin can't buy subscription")))
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, APIResponseCodeForbidden, body.Code)
	require.Equal(t, "Admin can't buy subscription", body.Message)
}

func TestFromError_PlainErrorIsHidden(t *testing.T) {
	status, body := FromError(errors.New("pq: connection reset"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, APIResponseCodeError, body.Code)
	require.Equal(t, "Internal Server Error", body.Message)
}

func TestOKT(t *testing.T) {
	r := OKT(map[string]string{"key": "rzp_test"})
	require.Equal(t, APIResponseCodeOK, r.Code)
	require.Equal(t, "ok", r.Message)
	require.Equal(t, "rzp_test", r.Data["key"])
}
