package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTag is returned when a tag name does not map to a TagID
var ErrUnknownTag = errors.New("unknown tag")

// TagID is an enumerated module category. NoTag means "no tag filter".
type TagID int

const (
	NoTag TagID = iota
	TagAmplifier
	TagAttenuator
	TagBlank
	TagChorus
	TagClock
	TagCompressor
	TagController
	TagDelay
	TagDigital
	TagDistortion
	TagDrum
	TagDual
	TagDynamics
	TagEffect
	TagEnvelopeFollower
	TagEnvelopeGenerator
	TagEqualizer
	TagExternal
	TagFilter
	TagFlanger
	TagFunctionGenerator
	TagGranular
	TagLFO
	TagLimiter
	TagLogic
	TagLowPassGate
	TagMIDI
	TagMixer
	TagMultiple
	TagNoise
	TagOscillator
	TagPanning
	TagQuad
	TagQuantizer
	TagRandom
	TagReverb
	TagRingModulator
	TagSampleAndHold
	TagSampler
	TagSequencer
	TagSlewLimiter
	TagSwitch
	TagSynthVoice
	TagTuner
	TagUtility
	TagVisual
	TagVocoder
	TagWaveshaper

	numTags
)

type tagInfo struct {
	key   string
	label string
}

var tagTable = [numTags]tagInfo{
	NoTag:                {"", ""},
	TagAmplifier:         {"amplifier", "Amplifier/VCA"},
	TagAttenuator:        {"attenuator", "Attenuator"},
	TagBlank:             {"blank", "Blank"},
	TagChorus:            {"chorus", "Chorus"},
	TagClock:             {"clock", "Clock"},
	TagCompressor:        {"compressor", "Compressor"},
	TagController:        {"controller", "Controller"},
	TagDelay:             {"delay", "Delay"},
	TagDigital:           {"digital", "Digital"},
	TagDistortion:        {"distortion", "Distortion"},
	TagDrum:              {"drum", "Drum"},
	TagDual:              {"dual", "Dual/Stereo"},
	TagDynamics:          {"dynamics", "Dynamics"},
	TagEffect:            {"effect", "Effect"},
	TagEnvelopeFollower:  {"envelope_follower", "Envelope Follower"},
	TagEnvelopeGenerator: {"envelope_generator", "Envelope Generator"},
	TagEqualizer:         {"equalizer", "Equalizer"},
	TagExternal:          {"external", "External"},
	TagFilter:            {"filter", "Filter/VCF"},
	TagFlanger:           {"flanger", "Flanger"},
	TagFunctionGenerator: {"function_generator", "Function Generator"},
	TagGranular:          {"granular", "Granular"},
	TagLFO:               {"lfo", "LFO"},
	TagLimiter:           {"limiter", "Limiter"},
	TagLogic:             {"logic", "Logic"},
	TagLowPassGate:       {"low_pass_gate", "Low Pass Gate"},
	TagMIDI:              {"midi", "MIDI"},
	TagMixer:             {"mixer", "Mixer"},
	TagMultiple:          {"multiple", "Multiple"},
	TagNoise:             {"noise", "Noise"},
	TagOscillator:        {"oscillator", "Oscillator/VCO"},
	TagPanning:           {"panning", "Panning"},
	TagQuad:              {"quad", "Quad"},
	TagQuantizer:         {"quantizer", "Quantizer"},
	TagRandom:            {"random", "Random"},
	TagReverb:            {"reverb", "Reverb"},
	TagRingModulator:     {"ring_modulator", "Ring Modulator"},
	TagSampleAndHold:     {"sample_and_hold", "Sample and Hold"},
	TagSampler:           {"sampler", "Sampler"},
	TagSequencer:         {"sequencer", "Sequencer"},
	TagSlewLimiter:       {"slew_limiter", "Slew Limiter"},
	TagSwitch:            {"switch", "Switch"},
	TagSynthVoice:        {"synth_voice", "Synth Voice"},
	TagTuner:             {"tuner", "Tuner"},
	TagUtility:           {"utility", "Utility"},
	TagVisual:            {"visual", "Visual"},
	TagVocoder:           {"vocoder", "Vocoder"},
	TagWaveshaper:        {"waveshaper", "Waveshaper"},
}

// AllTags returns every tag except NoTag, in enum order
func AllTags() []TagID {
	tags := make([]TagID, 0, numTags-1)
	for t := NoTag + 1; t < numTags; t++ {
		tags = append(tags, t)
	}
	return tags
}

// Valid reports whether t is a known tag (NoTag included)
func (t TagID) Valid() bool {
	return t >= NoTag && t < numTags
}

// Label returns the human readable tag name
func (t TagID) Label() string {
	if !t.Valid() {
		return ""
	}
	return tagTable[t].label
}

// Key returns the manifest key for the tag, e.g. "envelope_generator"
func (t TagID) Key() string {
	if !t.Valid() {
		return ""
	}
	return tagTable[t].key
}

func (t TagID) String() string {
	if t == NoTag {
		return "NoTag"
	}
	if !t.Valid() {
		return fmt.Sprintf("TagID(%d)", int(t))
	}
	return tagTable[t].label
}

// ParseTag resolves a manifest key or a label, case-insensitively.
// Spaces, dashes and slashes in the input are treated like underscores
// when matching keys.
func ParseTag(s string) (TagID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoTag, nil
	}
	key := strings.ToLower(s)
	key = strings.NewReplacer(" ", "_", "-", "_", "/", "_").Replace(key)
	for t := NoTag + 1; t < numTags; t++ {
		if tagTable[t].key == key || strings.EqualFold(tagTable[t].label, s) {
			return t, nil
		}
	}
	return NoTag, fmt.Errorf("%w: %q", ErrUnknownTag, s)
}

// MarshalText encodes the tag as its manifest key
func (t TagID) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, int(t))
	}
	return []byte(t.Key()), nil
}

// UnmarshalText decodes a manifest key or label
func (t *TagID) UnmarshalText(text []byte) error {
	parsed, err := ParseTag(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
