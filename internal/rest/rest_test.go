package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

func newTestContext(t *testing.T, idParam string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: idParam}}
	return c, rec
}

func TestPathID_Valid(t *testing.T) {
	c, rec := newTestContext(t, "42")

	id, ok := pathID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPathID_Malformed(t *testing.T) {
	c, rec := newTestContext(t, "abc")

	_, ok := pathID(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ErrBadParamInput.Error())
}

func TestPathID_NonPositive(t *testing.T) {
	for _, raw := range []string{"0", "-5"} {
		c, rec := newTestContext(t, raw)

		_, ok := pathID(c, "id")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
