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
	"os"
	"strconv"
)

// Environment variables
const (
	PORT                    = "PORT"
	NITF_MAX_DOCUMENT_BYTES = "NITF_MAX_DOCUMENT_BYTES"
	NITF_DERIVED_QUALIFIER  = "NITF_DERIVED_QUALIFIER"
)

const (
	defaultPort             = "8080"
	defaultMaxDocumentBytes = 16 << 20
	defaultDerivedQualifier = "derived"
)

// GetPortStr returns the listen address for the PORT environment variable
func GetPortStr() string {
	port, ok := os.LookupEnv(PORT)
	if !ok || port == "" {
		LogInfo(&BasicLogContext{}, "Did not get PORT from the environment. Using default port "+defaultPort)
		port = defaultPort
	}
	return ":" + port
}

// GetMaxDocumentBytes returns the maximum size of a decoded segment document
// accepted by the server, from NITF_MAX_DOCUMENT_BYTES
func GetMaxDocumentBytes() int64 {
	raw, ok := os.LookupEnv(NITF_MAX_DOCUMENT_BYTES)
	if !ok {
		return defaultMaxDocumentBytes
	}
	size, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || size <= 0 {
		LogAlert(&BasicLogContext{}, fmt.Sprintf("Invalid %s value `%s`. Using default of %d bytes.", NITF_MAX_DOCUMENT_BYTES, raw, defaultMaxDocumentBytes))
		return defaultMaxDocumentBytes
	}
	return size
}

// GetDerivedQualifier returns the qualifier used when naming derived images,
// from NITF_DERIVED_QUALIFIER
func GetDerivedQualifier() string {
	qualifier, ok := os.LookupEnv(NITF_DERIVED_QUALIFIER)
	if !ok || qualifier == "" {
		return defaultDerivedQualifier
	}
	return qualifier
}
