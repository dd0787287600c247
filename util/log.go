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
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity is the RFC 5424 severity of a log line
type Severity int

// Severities used by this application
const (
	ERROR   Severity = 3
	WARNING Severity = 4
	NOTICE  Severity = 5
	INFO    Severity = 6
	DEBUG   Severity = 7
)

func (s Severity) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARNING:
		return "WARNING"
	case NOTICE:
		return "NOTICE"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	}
	return fmt.Sprintf("SEVERITY(%d)", int(s))
}

// LogContext is the context of a logged operation
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// LogSink may be implemented by a LogContext to receive log lines directly
// instead of having them written to the process log
type LogSink interface {
	Log(severity Severity, message string)
}

// BasicLogContext is a LogContext with default values
type BasicLogContext struct {
	once      sync.Once
	sessionID string
}

// NewBasicLogContext creates a BasicLogContext with its session ID assigned
func NewBasicLogContext() *BasicLogContext {
	ctx := &BasicLogContext{}
	ctx.SessionID()
	return ctx
}

// AppName returns the application name
func (c *BasicLogContext) AppName() string {
	return "nitf-transformer"
}

// SessionID returns a Session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	c.once.Do(func() {
		c.sessionID, _ = PsuUUID()
	})
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// PsuUUID returns a new random UUID string
func PsuUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// LogAuditInput describes an auditable action
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

var hostname, _ = os.Hostname()

func logMessage(ctx LogContext, severity Severity, msgID string, structured string, message string) {
	if ctx == nil {
		ctx = &BasicLogContext{}
	}
	if sink, ok := ctx.(LogSink); ok {
		sink.Log(severity, message)
		return
	}
	writeLine(ctx, severity, msgID, structured, message)
}

func writeLine(ctx LogContext, severity Severity, msgID string, structured string, message string) {
	// facility 1 (user-level messages)
	pri := 8 + int(severity)
	log.Printf("<%d>1 %s %s %s %d %s %s %s",
		pri, time.Now().UTC().Format(time.RFC3339), hostname, ctx.AppName(), os.Getpid(),
		msgID, structured, message)
}

func sessionData(ctx LogContext) string {
	if ctx == nil {
		return "-"
	}
	return fmt.Sprintf("[session id=%q]", ctx.SessionID())
}

// LogInfo logs an informational message
func LogInfo(ctx LogContext, message string) {
	logMessage(ctx, INFO, "-", sessionData(ctx), message)
}

// LogAlert logs a warning that does not stop the current operation
func LogAlert(ctx LogContext, message string) {
	logMessage(ctx, WARNING, "-", sessionData(ctx), message)
}

// LogAudit logs an auditable action
func LogAudit(ctx LogContext, input LogAuditInput) {
	structured := fmt.Sprintf("[pzaudit actor=%q action=%q actee=%q]", input.Actor, input.Action, input.Actee)
	logMessage(ctx, input.Severity, "AUDIT", structured, input.Message)
}

// LogSimpleErr logs an error with a message and returns an error combining both
func LogSimpleErr(ctx LogContext, message string, err error) error {
	if err == nil {
		logMessage(ctx, ERROR, "-", sessionData(ctx), message)
		return fmt.Errorf("%s", message)
	}
	logMessage(ctx, ERROR, "-", sessionData(ctx), message+" "+err.Error())
	return fmt.Errorf("%s %w", message, err)
}
