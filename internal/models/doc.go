// Package models defines the core domain models for MoneyTogether.
//
// # Model Overview
//
//   - Wallet: a shared account holding members, a base currency, and
//     optionally a pooled cashbox
//   - WalletMember: an immutable roster entry owned by a wallet
//   - MoneyLog: one income or expense transaction recorded in a wallet
//   - SettlementMember: a finalized per-participant allocation entry on a
//     spending money log
//   - Category, UserAsset, PaletteColor, Icon: value objects attached to
//     money logs
//
// # Design Principles
//
//  1. Amounts travel as decimal strings ("1,234.56" at the presentation
//     boundary, "1234.56" internally); arithmetic always goes through
//     shopspring/decimal, never float64.
//  2. Models reference each other by ID, not by pointer, to avoid hidden
//     aliasing between screens.
//  3. Wallet data is supplied to sessions at construction time and treated
//     as read-only; sessions never fetch it themselves.
package models
