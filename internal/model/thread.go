// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Thread holds the messages of one conversation in display order.
// Messages are only ever appended.
type Thread struct {
	messages []Message
}

// NewThread creates a thread pre-filled with seeded messages.
// The seeded ids are kept as given.
func NewThread(seeded []Message) *Thread {
	t := &Thread{messages: make([]Message, 0, len(seeded)+8)}
	t.messages = append(t.messages, seeded...)
	return t
}

// Append stores msg with ID set to the current length plus one and returns
// the stored copy.
//
// The id scheme relies on messages never being removed.
func (t *Thread) Append(msg Message) Message {
	msg.ID = len(t.messages) + 1
	t.messages = append(t.messages, msg)
	return msg
}

// Len returns the number of messages.
func (t *Thread) Len() int {
	return len(t.messages)
}

// Messages returns a copy of the messages in order.
func (t *Thread) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}
