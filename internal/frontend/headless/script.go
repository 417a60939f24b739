package headless

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/set"
)

// Event is a scripted key state change applied before the given frame runs.
type Event struct {
	Frame int
	Key   uint8
	Down  bool
}

// ParseScript parses a comma separated list of key events in the form
// frame:key[+|-]. The key is a hex digit, + presses and - releases the key.
// Without suffix the key is pressed for a single frame.
func ParseScript(script string) ([]Event, error) {
	var events []Event

	for item := range strings.SplitSeq(script, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		parsed, err := parseEvent(item)
		if err != nil {
			return nil, err
		}
		events = append(events, parsed...)
	}

	slices.SortStableFunc(events, func(a, b Event) int {
		return cmp.Compare(a.Frame, b.Frame)
	})

	if err := validateScript(events); err != nil {
		return nil, err
	}
	return events, nil
}

func parseEvent(item string) ([]Event, error) {
	frameText, keyText, ok := strings.Cut(item, ":")
	if !ok {
		return nil, fmt.Errorf("invalid key event '%s': missing ':'", item)
	}

	frame, err := strconv.Atoi(frameText)
	if err != nil || frame < 0 {
		return nil, fmt.Errorf("invalid frame number in key event '%s'", item)
	}

	suffix := byte(0)
	if n := len(keyText); n > 0 && (keyText[n-1] == '+' || keyText[n-1] == '-') {
		suffix = keyText[n-1]
		keyText = keyText[:n-1]
	}

	key, err := strconv.ParseUint(keyText, 16, 8)
	if err != nil || len(keyText) != 1 || key >= vm.KeyCount {
		return nil, fmt.Errorf("invalid key in key event '%s', expected a hex digit", item)
	}

	switch suffix {
	case '+':
		return []Event{{Frame: frame, Key: uint8(key), Down: true}}, nil
	case '-':
		return []Event{{Frame: frame, Key: uint8(key)}}, nil
	default:
		return []Event{
			{Frame: frame, Key: uint8(key), Down: true},
			{Frame: frame + 1, Key: uint8(key)},
		}, nil
	}
}

// validateScript rejects scripts that press a held key or release a key
// that is not held.
func validateScript(events []Event) error {
	held := set.New[uint8]()

	for _, event := range events {
		switch {
		case event.Down && held.Contains(event.Key):
			return fmt.Errorf("key %X pressed at frame %d is already held", event.Key, event.Frame)
		case event.Down:
			held.Add(event.Key)
		case !held.Contains(event.Key):
			return fmt.Errorf("key %X released at frame %d is not held", event.Key, event.Frame)
		default:
			held.Remove(event.Key)
		}
	}
	return nil
}
