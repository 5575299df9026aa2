// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/column, domain/note,
// domain/board); the position rules shared by both ordering domains live in
// domain/ordering. This root package holds sentinel errors, validation types,
// the owner identity type and field rules shared by all entities.
package domain
