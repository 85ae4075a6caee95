// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the linkdir process lifecycle.
//
// It loads the stored link forest, runs the terminal UI on top of the client
// services and releases the storage on exit.
package client
