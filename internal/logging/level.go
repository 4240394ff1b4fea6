package logging

import (
	"fmt"
	"strings"
)

// Level encodes a message category and a cumulative detail tier in a
// single word. Category bits select what kind of message this is, tier
// bits select how much detail a logger is willing to show. The tier
// ranges are cumulative: Level2 contains every bit of Level1, Level3
// every bit of Level2.
type Level uint32

// Tier ranges.
const (
	Level0 Level = 0x00
	Level1 Level = 0x01
	Level2 Level = 0x03
	Level3 Level = 0x07
)

// Category bits. A message carrying none of these belongs to the
// default category, rendered as '-'.
const (
	Control Level = 0x08
	Error   Level = 0x10
	Raw     Level = 0x20
	Private Level = 0x40
	Audit   Level = 0x80
)

const (
	// Silent disables everything.
	Silent Level = 0
	// Full enables every category at maximum detail.
	Full Level = Control | Error | Raw | Private | Audit | Level3
	// DefaultLevel is applied to loggers with no configured level.
	DefaultLevel Level = Control | Error | Raw | Private | Audit | Level1
)

// Enabled reports whether a message requested at level req is emitted
// under the enabled mask. This is a subset test, not an overlap test:
// every bit of the request must be present in the mask.
func Enabled(enabled, req Level) bool {
	return enabled&req == req
}

// group resolves the two prefix characters for a level. When several
// category bits are set the first match in priority order wins.
func (l Level) group() (cat, tier byte) {
	switch {
	case l&Control != 0:
		cat = '~'
	case l&Error != 0:
		cat = '!'
	case l&Raw != 0:
		cat = '#'
	case l&Private != 0:
		cat = '?'
	case l&Audit != 0:
		cat = '>'
	default:
		cat = '-'
	}
	switch {
	case l&(Level3^Level2) != 0:
		tier = '3'
	case l&(Level2^Level1) != 0:
		tier = '2'
	case l&Level1 != 0:
		tier = '1'
	default:
		tier = '0'
	}
	return cat, tier
}

// Group returns the two-character prefix group for a level, e.g. "~1".
func (l Level) Group() string {
	cat, tier := l.group()
	return string([]byte{cat, tier})
}

var categoryNames = []struct {
	name string
	bit  Level
}{
	{"control", Control},
	{"error", Error},
	{"raw", Raw},
	{"private", Private},
	{"audit", Audit},
}

var tiers = [4]Level{Level0, Level1, Level2, Level3}

// ParseLevel converts a textual level specification into a mask. A
// specification is a comma-separated list of tokens, each a category
// name (control, error, raw, private, audit or all) optionally followed
// by a tier digit 0-3. A bare name selects tier 1, a bare digit selects
// tier bits without any category, and "silent" clears everything.
//
//	all2            every category, tier 2
//	control3,error1 control at 3, plus error, plus tier 1 detail
//	silent          nothing
func ParseLevel(spec string) (Level, error) {
	var level Level
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(strings.ToLower(token))
		if token == "" {
			continue
		}
		if token == "silent" {
			continue
		}

		name := token
		tier := Level1
		if last := token[len(token)-1]; last >= '0' && last <= '3' {
			name = token[:len(token)-1]
			tier = tiers[last-'0']
		}

		switch {
		case name == "":
			level |= tier
		case name == "all":
			level |= Control | Error | Raw | Private | Audit | tier
		default:
			found := false
			for _, c := range categoryNames {
				if c.name == name {
					level |= c.bit | tier
					found = true
					break
				}
			}
			if !found {
				return 0, fmt.Errorf("unknown level token %q", token)
			}
		}
	}
	return level, nil
}

// String renders a mask in the syntax accepted by ParseLevel.
func (l Level) String() string {
	if l == 0 {
		return "silent"
	}
	_, tier := l.group()

	digit := string(rune(tier))
	all := true
	var parts []string
	for _, c := range categoryNames {
		if l&c.bit != 0 {
			parts = append(parts, c.name+digit)
		} else {
			all = false
		}
	}
	if all {
		return "all" + digit
	}
	if len(parts) == 0 {
		return digit
	}
	return strings.Join(parts, ",")
}
