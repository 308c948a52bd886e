package domain

import (
	interfaces "trychooser/internal/domain/interfaces"
	types "trychooser/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ControlID     = types.ControlID
	Fingerprint   = types.Fingerprint
	SessionID     = types.SessionID
	Option        = types.Option
	Subgroup      = types.Subgroup
	Group         = types.Group
	Choice        = types.Choice
	Radio         = types.Radio
	FilterOption  = types.FilterOption
	FilterControl = types.FilterControl
	Toggle        = types.Toggle
	Definition    = types.Definition
	State         = types.State
	Event         = types.Event
	GroupMode     = types.GroupMode
	FilterGate    = types.FilterGate
	Result        = types.Result
	Snapshot      = types.Snapshot
	ControlKind   = types.ControlKind
	ControlInfo   = types.ControlInfo
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	StateStore       = interfaces.StateStore
	SessionStore     = interfaces.SessionStore
	SelectionService = interfaces.SelectionService
	ChooserClient    = interfaces.ChooserClient
)

const (
	ModeAll   = types.ModeAll
	ModeNone  = types.ModeNone
	ModeMixed = types.ModeMixed

	KindOption   = types.KindOption
	KindAll      = types.KindAll
	KindNone     = types.KindNone
	KindSubgroup = types.KindSubgroup
	KindFilter   = types.KindFilter
	KindProfile  = types.KindProfile
	KindRadio    = types.KindRadio
	KindEmail    = types.KindEmail
)

// Function re-exports.
var (
	NewState     = types.NewState
	AllSelector  = types.AllSelector
	NoneSelector = types.NoneSelector
	Check        = types.Check
	Uncheck      = types.Uncheck
	Select       = types.Select
)
