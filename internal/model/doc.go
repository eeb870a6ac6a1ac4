// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shown by the operator console.
//
// # Key Types
//
//   - Thread: ordered list of messages; ids are assigned on append
//   - Message: one chat message with sender, clock time and optional file
//   - Attachment: display metadata of a file sent with a message
//   - ClientProfile, Transaction: read-only records for the sidebar
//   - Seed: the records the console starts with
//
// # Usage
//
//	seed := model.DefaultSeed()
//	thread := model.NewThread(seed.Messages)
//	msg := thread.Append(model.Message{Sender: model.SenderEmployee, Text: "Здравствуйте!"})
//	fmt.Println(msg.ID) // 4
package model
