// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package document provides the two PDF capabilities the pipeline
// consumes: per-page text reading and page-subset writing.
package document

import "errors"

// ErrDocumentOpen classifies unreadable or corrupt input documents
var ErrDocumentOpen = errors.New("document open failed")

// ErrDocumentWrite classifies output documents that cannot be persisted
var ErrDocumentWrite = errors.New("document write failed")
