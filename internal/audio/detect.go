package audio

import (
	"bytes"
	"strings"
)

// DetectFormat — сначала по сигнатуре первых байт, потом по заявленному MIME
func DetectFormat(data []byte, mimeType string) (Format, error) {
	switch {
	case bytes.HasPrefix(data, []byte("ID3")):
		return FormatMP3, nil
	case bytes.HasPrefix(data, []byte("OggS")):
		return FormatOggOpus, nil
	}

	mime := strings.ToLower(mimeType)
	switch {
	case strings.Contains(mime, "mp3"):
		return FormatMP3, nil
	case strings.Contains(mime, "ogg"):
		return FormatOggOpus, nil
	}

	return "", ErrUnsupportedFormat
}
