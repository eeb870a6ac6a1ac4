// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"

	"github.com/jeranaias/supportdesk-tui/internal/util"
)

// ClientProfile is the read-only client record shown in the sidebar.
type ClientProfile struct {
	Name          string `toml:"name" json:"name"`
	AccountNumber string `toml:"account_number" json:"account_number"`
	Phone         string `toml:"phone" json:"phone"`
	Email         string `toml:"email" json:"email"`
	Status        string `toml:"status" json:"status"` // e.g. "Verified"
	Balance       string `toml:"balance" json:"balance"`
}

// Initials returns the first letters of the first two words of the name.
func (c ClientProfile) Initials() string {
	words := strings.Fields(c.Name)
	var b strings.Builder
	for i := 0; i < len(words) && i < 2; i++ {
		b.WriteString(util.FirstRune(words[i]))
	}
	return b.String()
}

// TransactionStatus is the processing state of a transaction.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// Valid reports whether s is a known status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusFailed:
		return true
	}
	return false
}

// Label returns the badge text. Everything that is not completed is shown
// as in progress, failed included.
func (s TransactionStatus) Label() string {
	if s == StatusCompleted {
		return "Завершено"
	}
	return "В обработке"
}

// Transaction is a read-only history entry.
type Transaction struct {
	ID     int               `toml:"id" json:"id"`
	Date   string            `toml:"date" json:"date"`
	Type   string            `toml:"type" json:"type"`
	Amount string            `toml:"amount" json:"amount"` // signed, formatted
	Status TransactionStatus `toml:"status" json:"status"`
}

// IsDebit reports whether money left the account.
func (t Transaction) IsDebit() bool {
	return strings.HasPrefix(t.Amount, "-")
}
