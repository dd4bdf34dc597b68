// Package probe reads the EXIF capture time embedded in a media file. It
// backs the --exif-fallback path for rows whose declared date the export
// mangled beyond parsing.
package probe

import (
	"errors"
	"fmt"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/spf13/afero"
)

// exifLayout is the EXIF 2.x datetime format. EXIF datetimes carry no zone;
// like the declared table dates they are anchored in the reference timezone.
const exifLayout = "2006:01:02 15:04:05"

// ErrNoCaptureTime means the file decoded but carries no usable
// DateTimeOriginal or DateTime tag.
var ErrNoCaptureTime = errors.New("no capture time in EXIF")

// CaptureTime returns the file's original capture instant anchored in loc.
// DateTimeOriginal is preferred; DateTime is the fallback some cameras and
// editors write instead.
func CaptureTime(fs afero.Fs, path string, loc *time.Location) (time.Time, error) {
	f, err := fs.Open(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode exif from %s: %w", path, err)
	}

	for _, name := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		s, err := tag.StringVal()
		if err != nil {
			continue
		}
		if t, err := time.ParseInLocation(exifLayout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrNoCaptureTime
}
