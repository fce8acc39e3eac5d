// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive capture client runtime.
//
// It wires the terminal UI, the batch controller and the capture session
// into a single process lifecycle and releases them on exit.
package client
