// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package security validates operator and caller input before it reaches the
// filesystem or a store.
//
//   - ValidatePath rejects empty paths and parent directory references,
//     including ones introduced through symbolic links.
//   - ValidateFilePermissions reports group or world writable files, which
//     callers surface as a warning for configuration files.
//   - ValidateKey bounds store keys and rejects control characters.
//
// All failures wrap one of the package sentinel errors so callers can test
// them with errors.Is.
package security
