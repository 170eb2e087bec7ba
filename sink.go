package bmime

import (
	"fmt"
	"io"
	"math"
	"os"
	"runtime/debug"

	"github.com/advdv/bmime/internal/memlimit"
)

// fallbackThreshold is used when no process memory limit can be determined.
const fallbackThreshold = 100 << 20 // 100 MiB

// memLimitEnv configures the memory budget the auto-estimated buffer
// threshold is derived from. It uses the GOMEMLIMIT syntax: an integer with
// an optional B, KiB, MiB, GiB or TiB suffix.
const memLimitEnv = "BMIME_MEMORY_LIMIT"

// estimateThreshold derives the default buffer threshold: a quarter of the
// configured memory limit, else a quarter of the runtime's memory limit,
// else a fixed fallback. A malformed limit string is the one failure the
// build path produces itself.
func estimateThreshold(limit string) (int64, error) {
	if limit != "" {
		budget, err := memlimit.Parse(limit)
		if err != nil {
			return 0, NewError(KindConfiguration, err)
		}
		return budget / 4, nil
	}

	if budget := debug.SetMemoryLimit(-1); budget > 0 && budget < math.MaxInt64 {
		return budget / 4, nil
	}

	return fallbackThreshold, nil
}

// spillSink is a two-tier sink: bytes accumulate in memory until a write
// would push the total past the threshold, at which point everything
// migrates to a temporary file and stays there. Both tiers present the same
// seekable stream surface, so the assembler never knows which one is
// active.
type spillSink struct {
	threshold int64
	tempDir   string
	logs      Logger

	mem  []byte
	pos  int64
	file *os.File
}

func (s *spillSink) Write(p []byte) (n int, err error) {
	if s.file == nil && int64(len(s.mem))+int64(len(p)) > s.threshold {
		if err := s.spill(); err != nil {
			return 0, err
		}
	}

	if s.file != nil {
		return s.file.Write(p)
	}

	s.mem = append(s.mem, p...)
	return len(p), nil
}

// spill migrates the accumulated bytes to a temporary file and switches the
// sink to the file tier.
func (s *spillSink) spill() error {
	file, err := os.CreateTemp(s.tempDir, "bmime-sink-*")
	if err != nil {
		return fmt.Errorf("create spill file: %w", err)
	}

	if _, err := file.Write(s.mem); err != nil {
		s.removeTemp(file)
		return fmt.Errorf("migrate buffered bytes to spill file: %w", err)
	}

	s.logs.LogSinkSpill(int64(len(s.mem)), s.threshold)
	s.file = file
	s.mem = nil

	return nil
}

func (s *spillSink) Read(p []byte) (int, error) {
	if s.file != nil {
		return s.file.Read(p)
	}

	if s.pos >= int64(len(s.mem)) {
		return 0, io.EOF
	}

	n := copy(p, s.mem[s.pos:])
	s.pos += int64(n)

	return n, nil
}

func (s *spillSink) Seekable() bool { return true }

func (s *spillSink) Rewind() error {
	if s.file != nil {
		_, err := s.file.Seek(0, io.SeekStart)
		return err
	}

	s.pos = 0
	return nil
}

func (s *spillSink) Size() (int64, bool) {
	if s.file != nil {
		info, err := s.file.Stat()
		if err != nil {
			return 0, false
		}
		return info.Size(), true
	}

	return int64(len(s.mem)), true
}

// Origin returns the anonymous sentinel: sink contents never imply a
// filename.
func (s *spillSink) Origin() string { return "" }

// Close releases the temporary file when the sink spilled. It is safe to
// call on a memory-tier sink and safe to call twice.
func (s *spillSink) Close() error {
	if s.file == nil {
		s.mem = nil
		return nil
	}

	file := s.file
	s.file = nil
	s.removeTemp(file)

	return nil
}

func (s *spillSink) removeTemp(file *os.File) {
	if err := file.Close(); err != nil {
		s.logs.LogTempCleanupError(err)
	}
	if err := os.Remove(file.Name()); err != nil {
		s.logs.LogTempCleanupError(err)
	}
}

var _ Sink = &spillSink{}
