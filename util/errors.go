// Copyright 2016, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is an error carrying a detailed message for the log and a simple
// message for the caller
type Error struct {
	LogMsg     string
	SimpleMsg  string
	Input      string
	HTTPStatus int
}

// Error implements the error interface
func (e Error) Error() string {
	if e.SimpleMsg != "" {
		return e.SimpleMsg
	}
	return e.LogMsg
}

// Log logs the error and returns an error suitable for the caller
func (e Error) Log(ctx LogContext, prefix string) error {
	logMsg := e.LogMsg
	if logMsg == "" {
		logMsg = e.SimpleMsg
	}
	if prefix != "" {
		logMsg = prefix + ": " + logMsg
	}
	if e.Input != "" {
		logMsg += "\nInput: " + e.Input
	}
	logMessage(ctx, ERROR, "-", sessionData(ctx), logMsg)
	if e.HTTPStatus != 0 {
		return HTTPErr{Status: e.HTTPStatus, Message: e.Error()}
	}
	return e
}

// HTTPErr is an error with an HTTP status code
type HTTPErr struct {
	Status  int
	Message string
}

func (err HTTPErr) Error() string {
	return fmt.Sprintf("%d: %v", err.Status, err.Message)
}

type httpErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Session string `json:"session,omitempty"`
}

// HTTPError writes an error response and logs the request that failed
func HTTPError(request *http.Request, writer http.ResponseWriter, ctx LogContext, message string, status int) {
	if ctx == nil {
		ctx = &BasicLogContext{}
	}
	LogAudit(ctx, LogAuditInput{Actor: "nitf-transformer", Action: request.Method + " response", Actee: request.URL.String(), Message: message, Severity: NOTICE})
	body, _ := json.Marshal(httpErrorBody{Status: status, Message: message, Session: ctx.SessionID()})
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	writer.Write(body)
}
