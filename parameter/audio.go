package parameter

import "time"

// Audio cues
const (
	// AudioSampleRate is the speaker rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// FoundToneStartHz and FoundToneEndHz bound the rising sweep played on success
	FoundToneStartHz = 440.0
	FoundToneEndHz   = 880.0
	FoundToneLength  = 180 * time.Millisecond

	// NoPathBuzzHz is the base frequency of the failure buzz
	NoPathBuzzHz     = 120.0
	NoPathBuzzLength = 150 * time.Millisecond

	// MazeBlipHz is played when a maze is generated
	MazeBlipHz     = 660.0
	MazeBlipLength = 50 * time.Millisecond

	// AudioVolume scales every cue, 0.0-1.0
	AudioVolume = 0.2
)
