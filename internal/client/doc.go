// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the vault.
//
// [App] turns positional arguments into calls of the client SDK. Record
// values are sealed with a passphrase before they are stored and opened
// again when listed, so the server only ever keeps ciphertext.
package client
