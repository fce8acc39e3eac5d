// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains response wording shared by the stub depth server
// handlers and middleware.
package app

const (
	// MsgInternalServerError replaces the error text of any 5xx answer so
	// internal failures are not echoed to clients.
	MsgInternalServerError = "internal server error"

	// MsgStatusOK is the health probe status value.
	MsgStatusOK = "ok"
)
