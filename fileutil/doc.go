// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fileutil provides the atomic JSON file primitives used by the file
// URL store.
//
// # Atomic Writes
//
// AtomicWriteJSON writes to a temporary file in the target directory, syncs
// it, and renames it into place, so readers never observe a partially
// written record:
//
//	err := fileutil.AtomicWriteJSON(path, record)
//
// # Reading
//
// ReadJSON treats a missing file as "no data" rather than an error and
// reports it through the returned bool:
//
//	var env envelope
//	found, err := fileutil.ReadJSON(path, &env)
//
// # Metadata
//
// Metadata records when a value was written and by which format version.
// Stores embed it in their envelopes and compare Version on read.
package fileutil
