package model

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DayNames are the weekday labels, Monday first, used for parsing and
// rendering. Parsing matches a case-insensitive prefix of at least two
// characters, so "Mo", "tue" and "Thursday" all resolve.
var DayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var (
	timeLinePattern   = regexp.MustCompile(`^([A-Za-z]+)\W?\s+(\d{1,2})[:.](\d{2})\s*-\s*(\d{1,2})[:.](\d{2})\s*(.*)$`)
	colorTuplePattern = regexp.MustCompile(`^\(?\s*(\d{1,3})\s*[,;]\s*(\d{1,3})\s*[,;]\s*(\d{1,3})\s*\)?$`)
	colorHexPattern   = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)
)

// namedColors covers the HTML color names the definition files may use.
var namedColors = map[string]Color{
	"black":     {0, 0, 0},
	"white":     {255, 255, 255},
	"red":       {255, 0, 0},
	"green":     {0, 128, 0},
	"lime":      {0, 255, 0},
	"blue":      {0, 0, 255},
	"yellow":    {255, 255, 0},
	"cyan":      {0, 255, 255},
	"magenta":   {255, 0, 255},
	"gray":      {128, 128, 128},
	"grey":      {128, 128, 128},
	"silver":    {192, 192, 192},
	"maroon":    {128, 0, 0},
	"olive":     {128, 128, 0},
	"navy":      {0, 0, 128},
	"teal":      {0, 128, 128},
	"purple":    {128, 0, 128},
	"orange":    {255, 165, 0},
	"pink":      {255, 192, 203},
	"brown":     {165, 42, 42},
	"gold":      {255, 215, 0},
	"coral":     {255, 127, 80},
	"salmon":    {250, 128, 114},
	"tomato":    {255, 99, 71},
	"violet":    {238, 130, 238},
	"indigo":    {75, 0, 130},
	"skyblue":   {135, 206, 235},
	"steelblue": {70, 130, 180},
}

// ParseKind resolves a kind token from a definition file. The historical
// tokens "UE" and "VO" are accepted alongside the descriptive ones.
func ParseKind(token string) (SubjectKind, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "ue", "one", "required", "required-one":
		return RequiredOne, nil
	case "vo", "all", "fill", "fill-all":
		return FillAll, nil
	}
	return 0, fmt.Errorf("unrecognized subject kind %q", token)
}

// ParseWeekday resolves a weekday token to a Monday-based day index.
func ParseWeekday(token string) (int, error) {
	lowered := strings.ToLower(token)
	if len(lowered) < 2 {
		return 0, fmt.Errorf("weekday %q too short to match", token)
	}
	for i, name := range DayNames {
		if strings.HasPrefix(strings.ToLower(name), lowered) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unrecognized weekday %q", token)
}

// ParseColor resolves an HTML color name, a #hex code or an r,g,b tuple. The
// boolean is false when the line is not a color at all, so the caller can
// fall through to time-line parsing.
func ParseColor(line string) (Color, bool) {
	trimmed := strings.TrimSpace(line)

	if match := colorTuplePattern.FindStringSubmatch(trimmed); match != nil {
		components := [3]uint8{}
		for i := range components {
			value, err := strconv.Atoi(match[i+1])
			if err != nil || value > 255 {
				return Color{}, false
			}
			components[i] = uint8(value)
		}
		return Color{R: components[0], G: components[1], B: components[2]}, true
	}

	if match := colorHexPattern.FindStringSubmatch(trimmed); match != nil {
		digits := match[1]
		if len(digits) == 3 {
			digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
		}
		value, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{R: uint8(value >> 16), G: uint8(value >> 8), B: uint8(value)}, true
	}

	if color, known := namedColors[strings.ToLower(trimmed)]; known {
		return color, true
	}
	return Color{}, false
}

// parseTimeLine reads one "<weekday> H:MM-H:MM [location]" line.
func parseTimeLine(line string) (TimeSlot, error) {
	match := timeLinePattern.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return TimeSlot{}, fmt.Errorf("cannot read time line %q", line)
	}

	day, err := ParseWeekday(match[1])
	if err != nil {
		return TimeSlot{}, err
	}

	startHour, _ := strconv.Atoi(match[2])
	startMinute, _ := strconv.Atoi(match[3])
	endHour, _ := strconv.Atoi(match[4])
	endMinute, _ := strconv.Atoi(match[5])

	slot := TimeSlot{
		Day:      day,
		Start:    startHour*60 + startMinute,
		End:      endHour*60 + endMinute,
		Location: strings.TrimSpace(match[6]),
	}
	if err := checkSlot(slot); err != nil {
		return TimeSlot{}, err
	}
	return slot, nil
}

func checkSlot(slot TimeSlot) error {
	if slot.Start >= slot.End {
		return fmt.Errorf("slot ends before it starts (%d-%d)", slot.Start, slot.End)
	}
	if slot.Start%TickMinutes != 0 || slot.End%TickMinutes != 0 {
		return fmt.Errorf("slot boundaries must align to %d minutes", TickMinutes)
	}
	return nil
}

// checkSubject enforces the well-formedness the solver assumes: at least one
// slot, and no subject overlapping itself.
func checkSubject(subject Subject) error {
	if len(subject.Slots) == 0 {
		return fmt.Errorf("subject %q declares no time slots", subject.Name)
	}
	for i, slot := range subject.Slots {
		for _, other := range subject.Slots[i+1:] {
			if slot.Overlaps(other) {
				return fmt.Errorf("subject %q overlaps itself on %s", subject.Name, DayNames[slot.Day])
			}
		}
	}
	return nil
}

// ParseSubjectFile reads one subject definition: a kind token on the first
// line, an optional color on the second, then one time line per candidate
// slot. The subject name derives from the file name. Blank lines are skipped.
func ParseSubjectFile(path string) (Subject, error) {
	file, err := os.Open(path)
	if err != nil {
		return Subject{}, fmt.Errorf("cannot open subject definition: %w", err)
	}
	defer file.Close()

	subject := Subject{
		Name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Color: DefaultColor,
	}

	scanner := bufio.NewScanner(file)
	sawKind := false
	sawColorLine := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !sawKind {
			kind, err := ParseKind(line)
			if err != nil {
				return Subject{}, fmt.Errorf("subject %q: %w", subject.Name, err)
			}
			subject.Kind = kind
			sawKind = true
			continue
		}

		if !sawColorLine && len(subject.Slots) == 0 {
			sawColorLine = true
			if color, isColor := ParseColor(line); isColor {
				subject.Color = color
				continue
			}
		}

		slot, err := parseTimeLine(line)
		if err != nil {
			return Subject{}, fmt.Errorf("subject %q: %w", subject.Name, err)
		}
		subject.Slots = append(subject.Slots, slot)
	}
	if err := scanner.Err(); err != nil {
		return Subject{}, fmt.Errorf("subject %q: %w", subject.Name, err)
	}
	if !sawKind {
		return Subject{}, fmt.Errorf("subject %q: empty definition file", subject.Name)
	}
	if err := checkSubject(subject); err != nil {
		return Subject{}, err
	}
	return subject, nil
}

// LoadSubjects reads every *.txt definition in the directory, sorted by file
// name. The resulting order is the solver's conflict-resolution order, so it
// is deliberately stable and visible to the caller.
func LoadSubjects(dir string) ([]Subject, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no subject definition files found in %s", dir)
	}
	sort.Strings(paths)

	subjects := make([]Subject, 0, len(paths))
	for _, path := range paths {
		subject, err := ParseSubjectFile(path)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

// SubjectInput is the JSON shape of one subject definition.
type SubjectInput struct {
	Name  string      `mapstructure:"name"`
	Kind  string      `mapstructure:"kind"`
	Color string      `mapstructure:"color"`
	Slots []SlotInput `mapstructure:"slots"`
}

type SlotInput struct {
	Day      string `mapstructure:"day"`
	Start    string `mapstructure:"start"`
	End      string `mapstructure:"end"`
	Location string `mapstructure:"location"`
}

// SubjectsFromJSON loads subject definitions from a single JSON file holding
// an array of subjects, as an alternative to a directory of text files.
func SubjectsFromJSON(file string) ([]Subject, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var inputJSON []map[string]any
	if err := json.Unmarshal(bytes, &inputJSON); err != nil {
		return nil, fmt.Errorf("cannot parse input file: %w", err)
	}

	var inputs []SubjectInput
	if err := mapstructure.Decode(inputJSON, &inputs); err != nil {
		return nil, fmt.Errorf("cannot decode input file: %w", err)
	}

	subjects := make([]Subject, 0, len(inputs))
	for _, input := range inputs {
		subject, err := input.subject()
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

func (input SubjectInput) subject() (Subject, error) {
	kind, err := ParseKind(input.Kind)
	if err != nil {
		return Subject{}, fmt.Errorf("subject %q: %w", input.Name, err)
	}

	subject := Subject{Name: input.Name, Kind: kind, Color: DefaultColor}
	if input.Color != "" {
		color, isColor := ParseColor(input.Color)
		if !isColor {
			return Subject{}, fmt.Errorf("subject %q: unrecognized color %q", input.Name, input.Color)
		}
		subject.Color = color
	}

	for _, slotInput := range input.Slots {
		slot, err := slotInput.slot()
		if err != nil {
			return Subject{}, fmt.Errorf("subject %q: %w", input.Name, err)
		}
		subject.Slots = append(subject.Slots, slot)
	}
	if err := checkSubject(subject); err != nil {
		return Subject{}, err
	}
	return subject, nil
}

func (input SlotInput) slot() (TimeSlot, error) {
	day, err := ParseWeekday(input.Day)
	if err != nil {
		return TimeSlot{}, err
	}
	start, err := parseClock(input.Start)
	if err != nil {
		return TimeSlot{}, err
	}
	end, err := parseClock(input.End)
	if err != nil {
		return TimeSlot{}, err
	}

	slot := TimeSlot{Day: day, Start: start, End: end, Location: input.Location}
	if err := checkSlot(slot); err != nil {
		return TimeSlot{}, err
	}
	return slot, nil
}

// parseClock reads "H:MM" or "HH.MM" into minutes from midnight.
func parseClock(value string) (int, error) {
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == ':' || r == '.' })
	if len(parts) != 2 {
		return 0, fmt.Errorf("cannot read time %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("cannot read time %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute > 59 {
		return 0, fmt.Errorf("cannot read time %q", value)
	}
	return hour*60 + minute, nil
}
