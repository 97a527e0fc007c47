package mdf

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// A Profile describes one band-limit rewrite: the 4-byte record holding the
// stock band edges and the equal-length record that replaces it. The MDF
// stores band edges as frequency times ten in little-endian uint16 pairs,
// low edge first (150.0 MHz = 0x05DC).
type Profile struct {
	Name        string
	Description string
	Needle      []byte
	Replacement []byte
	Limit       int
}

// The band-limit record appears at up to three places in the MDF.
const defaultLimit = 3

// NewProfile builds a profile from band edges given in MHz.
func NewProfile(name, description string, fromLow, fromHigh, toLow, toHigh float64) (Profile, error) {
	needle, err := encodeBandLimits(fromLow, fromHigh)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", name, err)
	}

	replacement, err := encodeBandLimits(toLow, toHigh)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", name, err)
	}

	return Profile{
		Name:        name,
		Description: description,
		Needle:      needle,
		Replacement: replacement,
		Limit:       defaultLimit,
	}, nil
}

func encodeBandLimits(low, high float64) ([]byte, error) {
	if low <= 0 || high <= low {
		return nil, fmt.Errorf("%w: invalid band edges %g-%g MHz", ErrorBadProfile, low, high)
	}

	hi := math.Round(high * 10)
	if hi > math.MaxUint16 {
		return nil, fmt.Errorf("%w: band edge %g MHz is not representable", ErrorBadProfile, high)
	}

	var rec [4]byte
	binary.LittleEndian.PutUint16(rec[0:], uint16(math.Round(low*10)))
	binary.LittleEndian.PutUint16(rec[2:], uint16(hi))
	return rec[:], nil
}

func mustProfile(name, description string, fromLow, fromHigh, toLow, toHigh float64) Profile {
	p, err := NewProfile(name, description, fromLow, fromHigh, toLow, toHigh)
	if err != nil {
		panic(err)
	}
	return p
}

// BuiltinProfiles returns the profiles compiled into the tool. "2m" moves
// the stock 150-170 MHz range down to 144-164 MHz so the RSS accepts 2m ham
// frequencies. "2m-only" restricts the range to 144-148 MHz instead; note
// the alignment functions can still TX outside that range.
func BuiltinProfiles() []Profile {
	return []Profile{
		mustProfile("2m", "Lower band range 150-170 MHz to 144-164 MHz", 150, 170, 144, 164),
		mustProfile("2m-only", "Restrict band range 150-170 MHz to 144-148 MHz", 150, 170, 144, 148),
	}
}

// FindProfile looks up a profile by name.
func FindProfile(profiles []Profile, name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

type profileFile struct {
	Profile []rawProfile `toml:"profile"`
}

type rawProfile struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	FromLow     float64 `toml:"from_low"`
	FromHigh    float64 `toml:"from_high"`
	ToLow       float64 `toml:"to_low"`
	ToHigh      float64 `toml:"to_high"`
	Limit       int     `toml:"limit"`
}

// LoadProfiles reads additional band profiles from a TOML file. Each
// [[profile]] table names the stock band edges to search for and the edges
// to write, all in MHz.
func LoadProfiles(path string) ([]Profile, error) {
	var raw profileFile
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	var profiles []Profile
	for i, r := range raw.Profile {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: profile %d has no name", ErrorBadProfile, i)
		}

		p, err := NewProfile(r.Name, r.Description, r.FromLow, r.FromHigh, r.ToLow, r.ToHigh)
		if err != nil {
			return nil, err
		}
		if r.Limit > 0 {
			p.Limit = r.Limit
		}

		profiles = append(profiles, p)
	}

	return profiles, nil
}
