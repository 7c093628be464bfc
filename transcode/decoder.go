// Package transcode decodes audio files into mono sample buffers with ffmpeg
// so recordings can be analysed next to the synthetic test signals.
package transcode

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/RyanBlaney/sonido-tfd/logging"
)

var ErrNoSamples = errors.New("decoder produced no samples")

// DecoderConfig holds decoder configuration
type DecoderConfig struct {
	SampleRate int           `json:"sample_rate"`
	MaxSamples int           `json:"max_samples"` // 0 = whole file
	Offset     time.Duration `json:"offset"`      // seek before decoding
	FFmpegPath string        `json:"ffmpeg_path"`
	Timeout    time.Duration `json:"timeout"`
}

// DefaultDecoderConfig returns default decoder configuration
func DefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		SampleRate: 8000,
		FFmpegPath: "ffmpeg",
		Timeout:    30 * time.Second,
	}
}

// Decoder runs ffmpeg to produce float64 mono PCM
type Decoder struct {
	config *DecoderConfig
	logger logging.Logger
}

// NewDecoder creates a decoder; a nil config selects the defaults
func NewDecoder(config *DecoderConfig) *Decoder {
	if config == nil {
		config = DefaultDecoderConfig()
	}
	return &Decoder{
		config: config,
		logger: logging.WithFields(logging.Fields{
			"component": "audio_decoder",
		}),
	}
}

// ValidateConfig validates the decoder configuration
func (d *Decoder) ValidateConfig() error {
	if d.config.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive: %d", d.config.SampleRate)
	}
	if d.config.MaxSamples < 0 {
		return fmt.Errorf("max samples must be >= 0: %d", d.config.MaxSamples)
	}
	if d.config.Offset < 0 {
		return fmt.Errorf("offset must be >= 0: %v", d.config.Offset)
	}
	if d.config.FFmpegPath == "" {
		return errors.New("ffmpeg path is empty")
	}
	return nil
}

// DecodeFile decodes filename to mono samples at the configured rate
func (d *Decoder) DecodeFile(ctx context.Context, filename string) ([]float64, error) {
	if err := d.ValidateConfig(); err != nil {
		return nil, err
	}

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	args := d.buildFFmpegArgs(filename)
	logger := d.logger.WithFields(logging.Fields{"filename": filename})
	logger.Debug("Running ffmpeg command", logging.Fields{
		"args": strings.Join(args, " "),
	})

	output, err := exec.CommandContext(ctx, d.config.FFmpegPath, args...).Output()
	if err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			logger.Error(err, "ffmpeg decode failed", logging.Fields{
				"stderr": string(exitError.Stderr),
			})
		}
		return nil, fmt.Errorf("ffmpeg decode %s: %w", filename, err)
	}

	samples := bytesToFloat64(output)
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSamples, filename)
	}
	if d.config.MaxSamples > 0 && len(samples) > d.config.MaxSamples {
		samples = samples[:d.config.MaxSamples]
	}

	logger.Debug("decoded audio", logging.Fields{
		"samples":     len(samples),
		"sample_rate": d.config.SampleRate,
	})
	return samples, nil
}

func (d *Decoder) buildFFmpegArgs(filename string) []string {
	var args []string
	if d.config.Offset > 0 {
		args = append(args, "-ss", fmt.Sprintf("%.3f", d.config.Offset.Seconds()))
	}
	args = append(args,
		"-i", filename,
		"-f", "f64le",
		"-ac", "1",
		"-ar", strconv.Itoa(d.config.SampleRate),
	)
	if d.config.MaxSamples > 0 {
		args = append(args, "-frames:a", strconv.Itoa(d.config.MaxSamples))
	}
	return append(args, "-v", "error", "pipe:1")
}

// bytesToFloat64 converts raw little-endian float64 bytes, dropping a
// trailing partial sample
func bytesToFloat64(data []byte) []float64 {
	sampleCount := len(data) / 8
	if sampleCount == 0 {
		return nil
	}

	samples := make([]float64, sampleCount)
	for i := range samples {
		bits := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		samples[i] = math.Float64frombits(bits)
	}
	return samples
}
