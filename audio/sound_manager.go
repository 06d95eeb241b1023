// Package audio plays short cues for search and maze events.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridpath/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player is the cue surface used by the visualizer
type Player interface {
	PlayFound()
	PlayNoPath()
	PlayMaze()
	Close()
}

// Nop discards every cue
type Nop struct{}

func (Nop) PlayFound()  {}
func (Nop) PlayNoPath() {}
func (Nop) PlayMaze()   {}
func (Nop) Close()      {}

// SoundManager plays cues through the shared speaker
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
}

// NewSoundManager creates an uninitialized manager; cues are dropped until Initialize succeeds
func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	sm.initialized = true
	return nil
}

// Close silences pending cues and closes the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayFound plays a rising sweep
func (sm *SoundManager) PlayFound() {
	sm.add(NewSweepGenerator(sampleRate, parameter.FoundToneStartHz, parameter.FoundToneEndHz, parameter.FoundToneLength))
}

// PlayNoPath plays a short low buzz
func (sm *SoundManager) PlayNoPath() {
	sm.add(beep.Take(sampleRate.N(parameter.NoPathBuzzLength), NewBuzzGenerator(sampleRate, parameter.NoPathBuzzHz)))
}

// PlayMaze plays a short sine blip
func (sm *SoundManager) PlayMaze() {
	sine, err := generators.SineTone(sampleRate, parameter.MazeBlipHz)
	if err != nil {
		return
	}
	sm.add(beep.Take(sampleRate.N(parameter.MazeBlipLength), scale(sine, parameter.AudioVolume)))
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Play(s)
}
