package analyze

import (
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

// inspectEXIF reports whether the image payload carries EXIF metadata
// and whether any of it is GPS data. Payloads without an EXIF block
// (PNGs, most GIFs) simply report false; extraction errors are treated
// the same way because a half-readable EXIF block still means the bytes
// are there and will be retained or stripped with the image itself.
func inspectEXIF(data []byte) (hasEXIF, hasGPS bool) {
	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil || rawExif == nil {
		return false, false
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil || len(entries) == 0 {
		return false, false
	}

	for _, entry := range entries {
		if strings.HasPrefix(entry.TagName, "GPS") {
			return true, true
		}
	}
	return true, false
}
