// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks one operator session of the console.
//
// A session starts when the UI opens and ends when it quits. The Manager
// records its identifier, activity timestamps and action counters; the CLI
// logs the final Status when the program exits.
//
//	mgr := session.NewManager()
//	mgr.RecordActivity()
//	mgr.Count(session.EventMessageSent)
//	logger.Info("session ended", mgr.GetStatus().Fields()...)
package session
