package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func body(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, "Food Added")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	m := body(t, rec)
	assert.Equal(t, true, m["success"])
	assert.Equal(t, "Food Added", m["message"])
}

func TestFailKeepsHTTP200(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, "User already exists")

	assert.Equal(t, http.StatusOK, rec.Code)
	m := body(t, rec)
	assert.Equal(t, false, m["success"])
	assert.Equal(t, "User already exists", m["message"])
}

func TestCartIncludesEmptyMap(t *testing.T) {
	rec := httptest.NewRecorder()
	Cart(rec, map[string]int64{})

	m := body(t, rec)
	assert.Equal(t, true, m["success"])
	cart, ok := m["cartData"].(map[string]interface{})
	require.True(t, ok, "an empty cart still serialises as an object")
	assert.Empty(t, cart)
}

func TestErrorSetsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	Unauthorized(rec, "Not Authorized Login Again")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	m := body(t, rec)
	assert.Equal(t, false, m["success"])
}

func TestSessionAndToken(t *testing.T) {
	rec := httptest.NewRecorder()
	Session(rec, "https://checkout.test/cs_1")
	assert.Equal(t, "https://checkout.test/cs_1", body(t, rec)["session_url"])

	rec = httptest.NewRecorder()
	Token(rec, "jwt-token")
	assert.Equal(t, "jwt-token", body(t, rec)["token"])
}
