package settings

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Keys lists the settable keys in the order they are shown to the user.
var Keys = []string{
	"mode",
	"author",
	"show_ribbon_icon",
	"image_mode",
	"image_dir",
	"save_images_locally",
	"historical_events",
	"century",
	"decade",
	"all_centuries",
	"all_decades",
	"theme",
}

// Get returns the value stored under key in its textual form. Unset optional
// numbers are reported as "none".
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "mode":
		return s.Mode, nil
	case "author":
		return s.Author, nil
	case "show_ribbon_icon":
		return strconv.FormatBool(s.ShowRibbonIcon), nil
	case "image_mode":
		return strconv.FormatBool(s.ImageMode), nil
	case "image_dir":
		return s.ImageDir, nil
	case "save_images_locally":
		return strconv.FormatBool(s.SaveImagesLocally), nil
	case "historical_events":
		return strconv.FormatBool(s.HistoricalEvents), nil
	case "century":
		return formatOptional(s.Century), nil
	case "decade":
		return formatOptional(s.Decade), nil
	case "all_centuries":
		return strconv.FormatBool(s.AllCenturies), nil
	case "all_decades":
		return strconv.FormatBool(s.AllDecades), nil
	case "theme":
		return s.Theme, nil
	default:
		return "", unknownKey(key)
	}
}

// Set parses value and stores it under key. It does not validate the result
// as a whole; Store.Update does.
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	var err error
	switch key {
	case "mode":
		s.Mode = strings.ToLower(value)
	case "author":
		s.Author = value
	case "show_ribbon_icon":
		s.ShowRibbonIcon, err = parseBool(key, value)
	case "image_mode":
		s.ImageMode, err = parseBool(key, value)
	case "image_dir":
		s.ImageDir = value
	case "save_images_locally":
		s.SaveImagesLocally, err = parseBool(key, value)
	case "historical_events":
		s.HistoricalEvents, err = parseBool(key, value)
	case "century":
		s.Century, err = parseOptional(key, value)
	case "decade":
		s.Decade, err = parseOptional(key, value)
	case "all_centuries":
		s.AllCenturies, err = parseBool(key, value)
	case "all_decades":
		s.AllDecades, err = parseBool(key, value)
	case "theme":
		s.Theme = value
	default:
		return unknownKey(key)
	}
	return err
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, value)
	}
	return b, nil
}

func parseOptional(key, value string) (*int, error) {
	switch strings.ToLower(value) {
	case "", "none", "unset":
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %q is not a number", key, value)
	}
	return &n, nil
}

func formatOptional(v *int) string {
	if v == nil {
		return "none"
	}
	return strconv.Itoa(*v)
}

func unknownKey(key string) error {
	known := append([]string(nil), Keys...)
	sort.Strings(known)
	return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(known, ", "))
}
