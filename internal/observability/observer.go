// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides lightweight operation logging for the
// reconciliation pipeline.
package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver records pipeline operations
type StandardObserver struct {
	level  Level
	writer io.Writer
}

type Level int

const (
	Off     Level = 0
	Metrics Level = 1
	Debug   Level = 2
)

// NewStandardObserver creates an observer writing to the given writer
func NewStandardObserver(level Level, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing for an operation
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data OperationData) {
	if o == nil || o.level == Off {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	// Only emit JSON records in debug mode
	if o.level == Debug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// OperationData describes one pipeline operation
type OperationData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	RequestID  string                 `json:"request_id"`
	FilePath   string                 `json:"file_path,omitempty"`
	DurationMs int64                  `json:"duration_ms,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	PageCount  int                    `json:"page_count,omitempty"`
	NameCount  int                    `json:"name_count,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
