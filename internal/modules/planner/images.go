// README: Deterministic name/URL to canonical image path resolution.
package planner

import (
	"strings"
)

const imagePathPrefix = "/trip-images/"

// imageExtensions are the filename suffixes accepted as already carrying an
// image extension.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// ResolveImageURL maps a display name or image reference to the canonical
// local path under /trip-images/. The resolution is deterministic and
// idempotent; it performs no existence check, so a path to a file that does
// not exist is a legitimate result.
//
// Rules, applied in order:
//  1. empty input resolves to "" (caller omits the field)
//  2. an already-canonical /trip-images/ path passes through unchanged
//  3. a fully-qualified URL keeps its last path segment, with any
//     "trip_images" prefix and leading underscores stripped, and gains
//     ".jpg" when it has no extension
//  4. a plain name is slugged: lower-cased, spaces and hyphens to
//     underscores, non [a-z0-9_.] dropped, ".jpg" appended unless an image
//     extension is already present
func ResolveImageURL(nameOrURL string) string {
	if nameOrURL == "" {
		return ""
	}

	if strings.HasPrefix(nameOrURL, imagePathPrefix) {
		return nameOrURL
	}

	if strings.HasPrefix(nameOrURL, "http") {
		segments := strings.Split(nameOrURL, "/")
		filename := segments[len(segments)-1]
		filename = strings.TrimPrefix(filename, "trip_images")
		filename = strings.TrimLeft(filename, "_")
		if filename == "" {
			return ""
		}
		if !strings.Contains(filename, ".") {
			filename += ".jpg"
		}
		return imagePathPrefix + filename
	}

	filename := strings.ToLower(nameOrURL)
	filename = strings.ReplaceAll(filename, " ", "_")
	filename = strings.ReplaceAll(filename, "-", "_")

	var b strings.Builder
	for _, c := range filename {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' || c == '.' {
			b.WriteRune(c)
		}
	}
	filename = b.String()
	if filename == "" {
		return ""
	}

	if !hasImageExtension(filename) {
		filename += ".jpg"
	}
	return imagePathPrefix + filename
}

func hasImageExtension(filename string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

// EnhanceImages rewrites every image reference in the plan through
// ResolveImageURL. An existing image_url wins over the record's name; records
// with neither are left without an image so the consumer can render a
// text-only fallback.
func EnhanceImages(plan *TripPlan) {
	if plan == nil {
		return
	}
	for i := range plan.DailyItinerary {
		day := &plan.DailyItinerary[i]

		if day.MorningActivity != nil {
			day.MorningActivity.ImageURL = resolveRecordImage(day.MorningActivity.ImageURL, day.MorningActivity.SpotName)
		}
		for j := range day.AfternoonActivities {
			a := &day.AfternoonActivities[j]
			a.ImageURL = resolveRecordImage(a.ImageURL, a.SpotName)
		}
		for j := range day.LunchOptions {
			m := &day.LunchOptions[j]
			m.ImageURL = resolveRecordImage(m.ImageURL, m.RestaurantName)
		}
		for j := range day.DinnerOptions {
			m := &day.DinnerOptions[j]
			m.ImageURL = resolveRecordImage(m.ImageURL, m.RestaurantName)
		}
		for j := range day.AccommodationOptions {
			h := &day.AccommodationOptions[j]
			h.ImageURL = resolveRecordImage(h.ImageURL, h.HotelName)
		}
	}
}

func resolveRecordImage(imageURL, name string) string {
	if imageURL != "" {
		return ResolveImageURL(imageURL)
	}
	return ResolveImageURL(name)
}
