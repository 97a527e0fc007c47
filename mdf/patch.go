package mdf

import (
	"bytes"
	"fmt"
)

// LogFunc receives progress messages. Level 0 messages are printed by
// default, higher levels add detail.
type LogFunc func(level int, format string, param ...interface{})

// Anchor is the copyright text perturbed to repair the checksum. The RSS
// only verifies the additive checksum, so altering display text is safe.
const Anchor = "ALL RIGHTS RESERVED"

// Each anchor byte absorbs at most this much of the checksum difference,
// keeping the text somewhat recognizable.
const maxByteChange = 32

// Config controls a patch run.
type Config struct {
	Profile Profile
	LogFunc LogFunc
}

func (c Config) log(level int, format string, param ...interface{}) {
	if c.LogFunc != nil {
		c.LogFunc(level, format, param...)
	}
}

// Result reports what a patch run did to the buffer.
type Result struct {
	OriginalChecksum uint16
	NewChecksum      uint16
	Replaced         int
	AnchorOffset     int
}

// ReplaceBandLimits returns a copy of buf with up to profile.Limit
// occurrences of the stock band-limit record replaced, scanning left to
// right. Fewer occurrences than the limit is fine: a codeplug does not have
// to contain all of them.
func ReplaceBandLimits(buf []byte, profile Profile) ([]byte, int, error) {
	if len(profile.Needle) != len(profile.Replacement) {
		return nil, 0, fmt.Errorf("%w: needle and replacement length differ", ErrorBadProfile)
	}

	found := bytes.Count(buf, profile.Needle)
	if found > profile.Limit {
		found = profile.Limit
	}

	return bytes.Replace(buf, profile.Needle, profile.Replacement, profile.Limit), found, nil
}

// FixupChecksum returns a copy of buf perturbed so its checksum equals
// target. The signed difference is absorbed by the anchor text, walking its
// bytes in order: spaces are skipped, every other byte takes up to 32 units
// in either direction. Byte arithmetic wraps mod 256 near the value
// boundaries; the checksum verification downstream is the correctness gate.
// The leftover difference is returned, nonzero when the anchor could not
// absorb all of it. The caller must recompute the checksum either way.
func FixupChecksum(buf []byte, target uint16) ([]byte, int) {
	difference := int(target) - int(Checksum(buf))

	original := []byte(Anchor)
	replaced := bytes.Clone(original)
	for i := range replaced {
		if difference == 0 {
			break
		}
		if replaced[i] == ' ' {
			continue
		}

		change := difference
		if change > maxByteChange {
			change = maxByteChange
		} else if change < -maxByteChange {
			change = -maxByteChange
		}

		replaced[i] += byte(change)
		difference -= change
	}

	return bytes.Replace(buf, original, replaced, 1), difference
}

// Patch runs the full rewrite over an in-memory codeplug: substitute the
// band-limit records, repair the checksum via the anchor text, verify that
// the checksum matches the original again. buf is not modified. A verify
// failure returns ErrorChecksumMismatch along with the partial result.
func Patch(buf []byte, cfg Config) ([]byte, Result, error) {
	res := Result{
		OriginalChecksum: Checksum(buf),
		AnchorOffset:     bytes.Index(buf, []byte(Anchor)),
	}
	cfg.log(0, "Original checksum = %04X", res.OriginalChecksum)

	updated, replaced, err := ReplaceBandLimits(buf, cfg.Profile)
	if err != nil {
		return nil, res, err
	}
	res.Replaced = replaced
	cfg.log(1, "Replaced %d band-limit record(s)", replaced)

	cfg.log(0, "Updating file to make up checksum difference of %d",
		int(res.OriginalChecksum)-int(Checksum(updated)))

	fixed, leftover := FixupChecksum(updated, res.OriginalChecksum)
	if leftover != 0 {
		cfg.log(1, "Anchor text could not absorb remaining difference of %d", leftover)
	} else if res.AnchorOffset >= 0 {
		cfg.log(1, "Replacing %q with %q",
			Anchor, fixed[res.AnchorOffset:res.AnchorOffset+len(Anchor)])
	}

	res.NewChecksum = Checksum(fixed)
	cfg.log(0, "New checksum = %04X", res.NewChecksum)

	if res.NewChecksum != res.OriginalChecksum {
		return nil, res, ErrorChecksumMismatch
	}

	return fixed, res, nil
}
