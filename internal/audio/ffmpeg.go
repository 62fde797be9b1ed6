package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

type FFmpegConverter struct{}

func NewFFmpegConverter() *FFmpegConverter {
	return &FFmpegConverter{}
}

// ToOggOpus перекодирует mp3 в моно ogg/opus 48kHz — формат, который
// принимает длительное распознавание
func (c *FFmpegConverter) ToOggOpus(ctx context.Context, mp3 []byte) ([]byte, error) {

	// 1. уникальный temp-dir, подчистим потом
	tmpDir, err := os.MkdirTemp("", "audioconv-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	input := filepath.Join(tmpDir, "input.mp3")
	if err := os.WriteFile(input, mp3, 0644); err != nil {
		return nil, err
	}

	output := filepath.Join(tmpDir, "output.ogg")

	// 2. запускаем ffmpeg
	cmd := exec.CommandContext(
		ctx,
		"ffmpeg",
		"-i", input,
		"-ac", "1",
		"-ar", "48000",
		"-c:a", "libopus",
		output,
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w: %s", err, out)
	}

	// 3. забираем результат
	return os.ReadFile(output)
}
