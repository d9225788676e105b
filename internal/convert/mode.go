// ABOUTME: Conversion modes and their selection from command flags
// ABOUTME: Exactly one target format must be chosen per run
package convert

import "github.com/orao-retro/oraotap/pkg/tap"

// Mode is one conversion direction
type Mode int

const (
	ModeNone Mode = iota
	ModeWAVToNew
	ModeWAVToOld
	ModeTapToWAV
	ModeOldToNew
	ModeNewToOld
)

func (m Mode) String() string {
	switch m {
	case ModeWAVToNew:
		return "wav2tap"
	case ModeWAVToOld:
		return "wav2oldtap"
	case ModeTapToWAV:
		return "tap2wav"
	case ModeOldToNew:
		return "old2new"
	case ModeNewToOld:
		return "new2old"
	default:
		return "none"
	}
}

// Selection holds the target-format flags as given on the command line
type Selection struct {
	WAVToNew bool
	WAVToOld bool
	TapToWAV bool
	OldToNew bool
	NewToOld bool
}

// Mode returns the single selected mode, or a usage error when zero or
// several were selected
func (s Selection) Mode() (Mode, error) {
	selected := ModeNone
	count := 0
	for _, c := range []struct {
		set  bool
		mode Mode
	}{
		{s.WAVToNew, ModeWAVToNew},
		{s.WAVToOld, ModeWAVToOld},
		{s.TapToWAV, ModeTapToWAV},
		{s.OldToNew, ModeOldToNew},
		{s.NewToOld, ModeNewToOld},
	} {
		if c.set {
			selected = c.mode
			count++
		}
	}

	switch count {
	case 0:
		return ModeNone, usageError("no target format selected")
	case 1:
		return selected, nil
	default:
		return ModeNone, usageError("%d target formats selected, choose exactly one", count)
	}
}

// TargetFormat returns the tape format a mode writes (wav2tap, wav2oldtap,
// old2new, new2old). ok is false for tap2wav.
func (m Mode) TargetFormat() (tap.Format, bool) {
	switch m {
	case ModeWAVToNew, ModeOldToNew:
		return tap.New, true
	case ModeWAVToOld, ModeNewToOld:
		return tap.Old, true
	default:
		return tap.New, false
	}
}
