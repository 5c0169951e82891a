package reader

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/handegar/wm8731/command"
)

// Raw frame dumps: two bytes per frame, MSB first.
func ReadBin(filename string) ([]command.Frame, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeBin(file)
}

func DecodeBin(r io.Reader) ([]command.Frame, error) {
	bytes, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	if len(bytes)%2 != 0 {
		return nil, errors.Errorf("odd number of bytes (%d) in frame dump", len(bytes))
	}

	var frames []command.Frame
	for i := 0; i < len(bytes); i += 2 {
		frames = append(frames, command.Frame(binary.BigEndian.Uint16(bytes[i:i+2])))
	}
	return frames, nil
}

// Intel HEX. Only data (00) and end of file (01) records are used.
func ReadHex(filename string) ([]command.Frame, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeHex(file)
}

func DecodeHex(r io.Reader) ([]command.Frame, error) {
	rdr := bufio.NewScanner(r)

	var bytes []byte
	lineNo := 0
	for rdr.Scan() {
		lineNo++
		line := strings.TrimSpace(rdr.Text())
		if line == "" {
			continue
		}
		if line[0] != ':' {
			return nil, errors.Errorf("line %d: missing ':'", lineNo)
		}

		record, err := hex.DecodeString(line[1:])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		if len(record) < 5 || len(record) != int(record[0])+5 {
			return nil, errors.Errorf("line %d: bad record length", lineNo)
		}

		var sum byte
		for _, b := range record {
			sum += b
		}
		if sum != 0 {
			return nil, errors.Errorf("line %d: checksum mismatch", lineNo)
		}

		recordType := record[3]
		if recordType == 1 {
			break
		} else if recordType != 0 {
			continue
		}

		bytes = append(bytes, record[4:len(record)-1]...)
	}
	if err := rdr.Err(); err != nil {
		return nil, err
	}

	if len(bytes)%2 != 0 {
		return nil, errors.Errorf("odd number of data bytes (%d)", len(bytes))
	}

	var frames []command.Frame
	for i := 0; i < len(bytes); i += 2 {
		frames = append(frames, command.Frame(binary.BigEndian.Uint16(bytes[i:i+2])))
	}
	return frames, nil
}

// ReadWAV opens a WAV file, e.g. a test tone written by the writer package.
// The caller closes the file.
func ReadWAV(filename string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}

	stream, wavFormat, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, beep.Format{}, errors.Wrapf(err, "decoding %s", filename)
	}

	return f, stream, wavFormat, nil
}

// ReadWAVFormat returns the sample format of a WAV file.
func ReadWAVFormat(filename string) (beep.Format, error) {
	f, _, wavFormat, err := ReadWAV(filename)
	if err != nil {
		return beep.Format{}, err
	}
	defer f.Close()

	return wavFormat, nil
}
