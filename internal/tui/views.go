package tui

import "glim/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewFeed          = messages.ViewFeed
	ViewEditor        = messages.ViewEditor
	ViewCircle        = messages.ViewCircle
	ViewCountryPicker = messages.ViewCountryPicker
	ViewOnboarding    = messages.ViewOnboarding
	ViewRecorder      = messages.ViewRecorder
)

type SwitchViewMsg = messages.SwitchViewMsg
type EntrySavedMsg = messages.EntrySavedMsg
type EntryDiscardedMsg = messages.EntryDiscardedMsg
type RecordingDoneMsg = messages.RecordingDoneMsg
type CountryChosenMsg = messages.CountryChosenMsg
type DataRefreshMsg = messages.DataRefreshMsg
