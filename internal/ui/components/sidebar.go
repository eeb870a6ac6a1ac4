// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/supportdesk-tui/internal/model"
	"github.com/jeranaias/supportdesk-tui/internal/ui/styles"
	"github.com/jeranaias/supportdesk-tui/internal/util"
)

// Sidebar copy.
const (
	ProfileTitle     = "Профиль клиента"
	SaveNotesLabel   = "Сохранить заметки"
	NoOperationsText = "Операций нет"
)

// =============================================================================
// PROFILE CARD
// =============================================================================

// ProfileCard is the top of the sidebar: avatar, name, account and contacts.
type ProfileCard struct {
	Profile model.ClientProfile
	Width   int
	theme   *styles.Theme
}

// NewProfileCard creates a profile card.
func NewProfileCard(profile model.ClientProfile, theme *styles.Theme) *ProfileCard {
	return &ProfileCard{Profile: profile, Width: 40, theme: theme}
}

// SetWidth sets the card width
func (pc *ProfileCard) SetWidth(width int) {
	pc.Width = width
}

func (pc *ProfileCard) field(label, value string, valueStyle lipgloss.Style) string {
	const labelWidth = 8
	l := pc.theme.FieldLabel.Render(util.PadRight(label, labelWidth))
	return l + valueStyle.Render(util.FitWidth(value, pc.Width-labelWidth))
}

// View renders the card.
func (pc *ProfileCard) View() string {
	center := lipgloss.NewStyle().Width(pc.Width).Align(lipgloss.Center)

	title := pc.theme.SidebarTitle.Render(ProfileTitle)
	avatar := center.Render(pc.theme.ProfileAvatar.Render(pc.Profile.Initials()))
	name := center.Render(pc.theme.ProfileName.Render(util.FitWidth(pc.Profile.Name, pc.Width)))
	account := center.Render(pc.theme.FieldLabel.Render(util.FitWidth(pc.Profile.AccountNumber, pc.Width)))

	rows := []string{
		pc.field("Тел.", pc.Profile.Phone, pc.theme.FieldValue),
		pc.field("Email", pc.Profile.Email, pc.theme.FieldValue),
		pc.field("Баланс", pc.Profile.Balance, pc.theme.Balance),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		avatar,
		name,
		account,
		"",
		strings.Join(rows, "\n"),
	)
}

// =============================================================================
// TABS
// =============================================================================

// SidebarTab selects the lower half of the sidebar.
type SidebarTab int

const (
	TabTransactions SidebarTab = iota
	TabNotes
)

// String returns the tab title.
func (t SidebarTab) String() string {
	switch t {
	case TabTransactions:
		return "Операции"
	case TabNotes:
		return "Заметки"
	default:
		return ""
	}
}

// Next returns the other tab.
func (t SidebarTab) Next() SidebarTab {
	if t == TabTransactions {
		return TabNotes
	}
	return TabTransactions
}

// Tabs renders the tab strip, each tab taking half the width.
func Tabs(theme *styles.Theme, active SidebarTab, width int) string {
	half := width / 2
	render := func(tab SidebarTab, w int) string {
		style := theme.TabInactive
		if tab == active {
			style = theme.TabActive
		}
		return style.Width(w).Align(lipgloss.Center).Render(tab.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		render(TabTransactions, half),
		render(TabNotes, width-half),
	)
}

// =============================================================================
// TRANSACTION CARDS
// =============================================================================

// TransactionList renders the operations tab.
type TransactionList struct {
	Transactions []model.Transaction
	Width        int
	theme        *styles.Theme
}

// NewTransactionList creates a transaction list.
func NewTransactionList(txs []model.Transaction, theme *styles.Theme) *TransactionList {
	return &TransactionList{Transactions: txs, Width: 40, theme: theme}
}

// SetWidth sets the list width
func (tl *TransactionList) SetWidth(width int) {
	tl.Width = width
}

// Card renders one transaction: type and status badge, then date and amount.
func (tl *TransactionList) Card(tx model.Transaction) string {
	inner := tl.Width - 4 // border + padding

	badgeStyle := tl.theme.BadgePending
	if tx.Status == model.StatusCompleted {
		badgeStyle = tl.theme.BadgeCompleted
	}
	badge := badgeStyle.Render(tx.Status.Label())
	kind := tl.theme.TxType.Render(util.FitWidth(tx.Type, inner-lipgloss.Width(badge)-1))

	amountStyle := tl.theme.TxCredit
	if tx.IsDebit() {
		amountStyle = tl.theme.TxDebit
	}
	amount := amountStyle.Render(tx.Amount)
	date := tl.theme.TxDate.Render(tx.Date)

	top := spread(kind, badge, inner)
	bottom := spread(date, amount, inner)
	return tl.theme.TxCard.Width(tl.Width - 2).Render(top + "\n" + bottom)
}

// View renders all cards.
func (tl *TransactionList) View() string {
	if len(tl.Transactions) == 0 {
		return tl.theme.Placeholder.Render(NoOperationsText)
	}
	cards := make([]string, 0, len(tl.Transactions))
	for _, tx := range tl.Transactions {
		cards = append(cards, tl.Card(tx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// =============================================================================
// NOTES FOOTER
// =============================================================================

// SaveNotesButton renders the save button under the notes editor.
// Focused buttons are underlined.
func SaveNotesButton(theme *styles.Theme, width int, focused bool) string {
	style := theme.SaveButton.Width(width).Align(lipgloss.Center)
	if focused {
		style = style.Underline(true)
	}
	return style.Render(SaveNotesLabel)
}

// spread puts left and right at the two ends of a width-wide line.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
