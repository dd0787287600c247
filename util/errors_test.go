package util

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Log(t *testing.T) {
	// Mock
	ctx := &RecordingLogContext{Quiet: true}
	plain := Error{LogMsg: "detailed", SimpleMsg: "simple", Input: "in"}
	withStatus := Error{SimpleMsg: "bad input", HTTPStatus: http.StatusBadRequest}

	// Tested code
	plainErr := plain.Log(ctx, "prefix")
	statusErr := withStatus.Log(ctx, "")

	// Asserts
	assert.Equal(t, "simple", plainErr.Error())
	assert.Equal(t, HTTPErr{Status: http.StatusBadRequest, Message: "bad input"}, statusErr)
	assert.Equal(t, "400: bad input", statusErr.Error())
	assert.Equal(t, []string{"prefix: detailed\nInput: in", "bad input"}, ctx.Messages(ERROR))
}

func TestHTTPError(t *testing.T) {
	// Mock
	ctx := &RecordingLogContext{Quiet: true}
	request := httptest.NewRequest("POST", "/transform", nil)
	recorder := httptest.NewRecorder()

	// Tested code
	HTTPError(request, recorder, ctx, "Document is invalid", http.StatusBadRequest)

	// Asserts
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	var body map[string]interface{}
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Document is invalid", body["message"])
	assert.Equal(t, float64(400), body["status"])
	assert.Equal(t, ctx.SessionID(), body["session"])
	assert.Len(t, ctx.Entries(), 1)
}
