// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual pieces of the chat console.
//
// Components are plain renderers: they take domain values and a Theme and
// return strings. Focus and input handling live in ui/chat.
//
//   - ChatHeader: client avatar, name, secure chat label, status badge
//   - MessageBubble / MessageList: the conversation thread
//   - TemplateBar, AttachmentChip, InputLine: the composer
//   - ProfileCard, Tabs, TransactionList, NotesFooter: the client sidebar
package components
