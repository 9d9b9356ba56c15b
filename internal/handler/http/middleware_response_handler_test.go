package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeaderRecordedOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rw.status, "only the first WriteHeader counts")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitStatusOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	n, err := rw.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, rw.status, "Write without WriteHeader implies 200")
	assert.Equal(t, "hello", rec.Body.String())
}

func TestResponseWriter_AccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	for _, chunk := range []string{"abc", "defg", "h"} {
		_, err := rw.Write([]byte(chunk))
		require.NoError(t, err)
	}

	assert.Equal(t, 8, rw.size)
	assert.Equal(t, "abcdefgh", rec.Body.String())
}
