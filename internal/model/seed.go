// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidSeed is returned when seed records break the console invariants.
var ErrInvalidSeed = errors.New("invalid seed data")

// Seed holds everything the console shows at startup. None of it is ever
// written back anywhere.
type Seed struct {
	Client       ClientProfile `toml:"client"`
	Transactions []Transaction `toml:"transactions"`
	Templates    []string      `toml:"templates"`
	Messages     []Message     `toml:"messages"`
	Notes        string        `toml:"notes"`
}

// =============================================================================
// DEFAULT SEED
// =============================================================================

// DefaultSeed returns the built-in demo conversation.
func DefaultSeed() *Seed {
	return &Seed{
		Client: ClientProfile{
			Name:          "Иванов Иван Петрович",
			AccountNumber: "40817810123456789012",
			Phone:         "+7 (999) 123-45-67",
			Email:         "ivanov@example.com",
			Status:        "Verified",
			Balance:       "450 000 ₽",
		},
		Transactions: []Transaction{
			{ID: 1, Date: "01.02.2026", Type: "Платёж по кредиту", Amount: "-15 000 ₽", Status: StatusCompleted},
			{ID: 2, Date: "28.01.2026", Type: "Пополнение счёта", Amount: "+50 000 ₽", Status: StatusCompleted},
			{ID: 3, Date: "15.01.2026", Type: "Перевод на карту", Amount: "-8 500 ₽", Status: StatusCompleted},
		},
		Templates: []string{
			"Спасибо за обращение! Я уточню информацию и свяжусь с вами.",
			"Для решения вашего вопроса потребуется 2-3 рабочих дня.",
			"Пожалуйста, предоставьте копию документа для дальнейшей обработки.",
		},
		Messages: []Message{
			{ID: 1, Text: "Добрый день! Помогите, пожалуйста, с вопросом по кредиту.", Sender: SenderClient, Time: "14:23", IsEncrypted: true},
			{ID: 2, Text: "Здравствуйте! Конечно, помогу. Что именно вас интересует?", Sender: SenderEmployee, Time: "14:24", IsEncrypted: true},
			{ID: 3, Text: "Хочу узнать про досрочное погашение кредита.", Sender: SenderClient, Time: "14:25", IsEncrypted: true},
		},
		Notes: "Клиент интересовался досрочным погашением кредита 15.01.2026",
	}
}

// =============================================================================
// SEED FIXTURE FILES
// =============================================================================

// LoadSeed reads a TOML fixture with the same layout as Seed. Top-level
// sections missing from the file keep their DefaultSeed values. Unknown keys
// are rejected so typos do not silently fall back to the demo data.
func LoadSeed(path string) (*Seed, error) {
	var file Seed
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidSeed, path, strings.Join(keys, ", "))
	}

	seed := DefaultSeed()
	if md.IsDefined("client") {
		seed.Client = file.Client
	}
	if md.IsDefined("transactions") {
		seed.Transactions = file.Transactions
	}
	if md.IsDefined("templates") {
		seed.Templates = file.Templates
	}
	if md.IsDefined("messages") {
		seed.Messages = file.Messages
	}
	if md.IsDefined("notes") {
		seed.Notes = file.Notes
	}

	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return seed, nil
}

// Validate checks that seeded records can be displayed and that message ids
// run 1..N in list order, which Thread.Append relies on.
func (s *Seed) Validate() error {
	for i, msg := range s.Messages {
		if msg.ID != i+1 {
			return fmt.Errorf("%w: message at position %d has id %d, want %d", ErrInvalidSeed, i, msg.ID, i+1)
		}
		if !msg.Sender.Valid() {
			return fmt.Errorf("%w: message %d has unknown sender %q", ErrInvalidSeed, msg.ID, msg.Sender)
		}
		if _, err := time.Parse(ClockFormat, msg.Time); err != nil {
			return fmt.Errorf("%w: message %d time %q is not HH:MM", ErrInvalidSeed, msg.ID, msg.Time)
		}
	}
	for _, tx := range s.Transactions {
		if !tx.Status.Valid() {
			return fmt.Errorf("%w: transaction %d has unknown status %q", ErrInvalidSeed, tx.ID, tx.Status)
		}
	}
	for i, tmpl := range s.Templates {
		if strings.TrimSpace(tmpl) == "" {
			return fmt.Errorf("%w: template %d is empty", ErrInvalidSeed, i+1)
		}
	}
	return nil
}
