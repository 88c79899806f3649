package omfile

import "github.com/omfileformat/go-omfile/format"

// config holds an Encoder's construction-time settings. It is unexported;
// callers build it indirectly via NewEncoder's Option varargs, mirroring
// the teacher's NumericEncoderConfig pattern (blob/numeric_encoder_config.go).
type config struct {
	mode        format.CompressionMode
	scale       float32
	withDigests bool
}

func defaultConfig() *config {
	return &config{
		mode:  format.Linear,
		scale: 1.0,
	}
}

func (c *config) setMode(mode format.CompressionMode) error {
	if !mode.Valid() {
		return invalidModeError(mode)
	}
	c.mode = mode

	return nil
}

func (c *config) setScale(scale float32) error {
	if err := validateScale(scale); err != nil {
		return err
	}
	c.scale = scale

	return nil
}

func (c *config) setChunkDigests(enabled bool) {
	c.withDigests = enabled
}
