package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundPlayerTint SoundType = iota // Player flipped to tinted
	SoundPlayerClear                 // Player flipped back to untinted
	SoundTypeCount
)
