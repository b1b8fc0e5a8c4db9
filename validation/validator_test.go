package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title     string `json:"title" binding:"required"`
	Published *bool  `json:"published" binding:"required"`
	Count     int    `json:"count" binding:"omitempty,min=2"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var s sample
	return c.ShouldBindJSON(&s)
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	details := ToDetails(bind(t, `{"count": 1}`))
	assert.Equal(t, map[string]string{
		"title":     "is required",
		"published": "is required",
		"count":     "must be at least 2",
	}, details)
}

func TestToDetailsFalseIsPresent(t *testing.T) {
	assert.NoError(t, bind(t, `{"title": "x", "published": false}`))
}

func TestToDetailsPayloadErrors(t *testing.T) {
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(bind(t, `{"title":`+"`")))
	assert.Equal(t, map[string]string{"payload": "request body is required"}, ToDetails(bind(t, ``)))
	assert.Equal(t, "must be of type bool", ToDetails(bind(t, `{"title": "x", "published": "yes"}`))["published"])
	assert.Nil(t, ToDetails(nil))
}
