// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"mime"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ClockFormat is the HH:MM layout used for message times.
const ClockFormat = "15:04"

// FallbackFileText is the message text used when a file is sent without a caption.
const FallbackFileText = "Документ отправлен"

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who wrote a message.
type Sender string

const (
	SenderEmployee Sender = "employee"
	SenderClient   Sender = "client"
)

// Valid reports whether s is one of the known senders.
func (s Sender) Valid() bool {
	return s == SenderEmployee || s == SenderClient
}

// Avatar returns the one-letter avatar shown next to the bubble.
func (s Sender) Avatar() string {
	if s == SenderEmployee {
		return "С"
	}
	return "К"
}

// =============================================================================
// ATTACHMENT TYPE
// =============================================================================

// Attachment is the display metadata of a file sent with a message.
// The file content itself is never read.
type Attachment struct {
	Name string `toml:"name" json:"name"`
	Size string `toml:"size" json:"size"` // e.g. "12.3 KB"
	Type string `toml:"type" json:"type"` // e.g. "PDF", or "FILE" when unknown
}

// NewAttachment derives attachment metadata from a file's name, size in
// bytes and MIME type.
func NewAttachment(name string, sizeBytes int64, mimeType string) Attachment {
	return Attachment{
		Name: name,
		Size: FormatKB(sizeBytes),
		Type: TypeLabel(mimeType),
	}
}

// FormatKB renders a byte count as kilobytes with one decimal.
func FormatKB(sizeBytes int64) string {
	return fmt.Sprintf("%.1f KB", float64(sizeBytes)/1024)
}

// TypeLabel returns the upper-cased subtype of a MIME type
// ("application/pdf" -> "PDF"). An empty type or a type without a subtype
// yields "FILE".
//
// This deliberately differs from a plain split on "/": parameters are
// dropped ("text/plain; charset=utf-8" -> "PLAIN") and everything after the
// first slash is kept ("a/b/c" -> "B/C").
func TypeLabel(mimeType string) string {
	mediaType := strings.TrimSpace(mimeType)
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = parsed
	}
	_, subtype, ok := strings.Cut(mediaType, "/")
	if !ok || subtype == "" {
		return "FILE"
	}
	// Casers keep state, so each call gets its own.
	return cases.Upper(language.Und).String(subtype)
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry of the conversation thread.
type Message struct {
	ID          int         `toml:"id" json:"id"`
	Text        string      `toml:"text" json:"text"`
	Sender      Sender      `toml:"sender" json:"sender"`
	Time        string      `toml:"time" json:"time"` // HH:MM
	IsEncrypted bool        `toml:"encrypted" json:"is_encrypted"`
	File        *Attachment `toml:"file,omitempty" json:"file,omitempty"`
}

// IsFromEmployee reports whether the operator wrote the message.
func (m Message) IsFromEmployee() bool {
	return m.Sender == SenderEmployee
}

// HasFile reports whether a file was sent with the message.
func (m Message) HasFile() bool {
	return m.File != nil
}

// Clock formats t as message time.
func Clock(t time.Time) string {
	return t.Format(ClockFormat)
}
