package rawtx

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// Relative lock layout of the input sequence field as enforced by the daemon.
// The bit positions are taken from observed daemon behaviour; keep every use
// of them behind the helpers below.
const (
	// SequenceLockTimeDisabled set means the input carries no relative lock.
	SequenceLockTimeDisabled uint32 = wire.SequenceLockTimeDisabled
	// SequenceLockTimeIsSeconds selects a time based lock instead of height.
	SequenceLockTimeIsSeconds uint32 = wire.SequenceLockTimeIsSeconds
	// SequenceLockTimeMask extracts the lock value.
	SequenceLockTimeMask uint32 = wire.SequenceLockTimeMask
	// SequenceLockTimeGranularity is the shift converting seconds to units.
	SequenceLockTimeGranularity = 5
	// SequenceFinal is the default sequence of inputs created by the daemon.
	SequenceFinal uint32 = wire.MaxTxInSequenceNum
)

// LockTimeUnit is the duration of one time based relative lock unit.
const LockTimeUnit = time.Second << SequenceLockTimeGranularity

// LockKind classifies a sequence value.
type LockKind uint8

const (
	LockDisabled LockKind = iota
	LockHeight
	LockTime
)

func (k LockKind) String() string {
	switch k {
	case LockDisabled:
		return "disabled"
	case LockHeight:
		return "height"
	case LockTime:
		return "time"
	default:
		return "unknown"
	}
}

// SequenceLock is the relative lock encoded in a sequence value.
type SequenceLock struct {
	Kind LockKind
	// Value is a block count for LockHeight and a unit count for LockTime.
	Value uint32
}

// Duration returns the lock length for time based locks, zero otherwise.
func (l SequenceLock) Duration() time.Duration {
	if l.Kind != LockTime {
		return 0
	}
	return time.Duration(l.Value) * LockTimeUnit
}

func (l SequenceLock) String() string {
	switch l.Kind {
	case LockHeight:
		return fmt.Sprintf("height+%d", l.Value)
	case LockTime:
		return fmt.Sprintf("time+%s", l.Duration())
	default:
		return l.Kind.String()
	}
}

// ParseSequence interprets seq as a relative lock.
func ParseSequence(seq uint32) SequenceLock {
	if seq&SequenceLockTimeDisabled != 0 {
		return SequenceLock{Kind: LockDisabled}
	}
	if seq&SequenceLockTimeIsSeconds != 0 {
		return SequenceLock{Kind: LockTime, Value: seq & SequenceLockTimeMask}
	}
	return SequenceLock{Kind: LockHeight, Value: seq & SequenceLockTimeMask}
}

// HeightSequence returns a sequence locking the input for blocks blocks.
func HeightSequence(blocks uint16) uint32 {
	return uint32(blocks)
}

// TimeSequence returns a sequence locking the input for at least d, rounded
// down to whole units.
func TimeSequence(d time.Duration) (uint32, error) {
	if d < 0 {
		return 0, fmt.Errorf("negative relative lock %s", d)
	}
	units := d / LockTimeUnit
	if units > time.Duration(SequenceLockTimeMask) {
		return 0, fmt.Errorf("relative lock %s exceeds %d units", d, SequenceLockTimeMask)
	}
	return SequenceLockTimeIsSeconds | uint32(units), nil
}
