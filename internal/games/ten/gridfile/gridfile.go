// Package gridfile reads and writes TEN! boards as flat text: one line per
// row, cells separated by whitespace, -1 for an empty cell.
//
// Decoding is lenient. The text decides the grid's shape and unreadable
// tokens become ten.Corrupt; whether the result fits a board is left to
// Board.Set.
package gridfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mamoru/ten/internal/games/ten"
)

// CellError describes a token that could not be read as an integer.
// Row and Col are 1-based.
type CellError struct {
	Row   int
	Col   int
	Token string
}

func (e CellError) Error() string {
	return fmt.Sprintf("gridfile: row %d, cell %d: cannot read %q", e.Row, e.Col, e.Token)
}

// Encode writes grid to w.
func Encode(w io.Writer, grid ten.Grid) error {
	bw := bufio.NewWriter(w)
	for _, row := range grid {
		for col, v := range row {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gridfile: cannot write grid: %w", err)
	}
	return nil
}

// Marshal returns the text form of grid.
func Marshal(grid ten.Grid) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, grid)
	return buf.Bytes()
}

// Decode reads a grid from r. Blank lines are skipped. Tokens that are not
// integers decode to ten.Corrupt and are reported in the returned slice;
// only read failures produce an error.
func Decode(r io.Reader) (ten.Grid, []CellError, error) {
	var (
		grid    ten.Grid
		invalid []CellError
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]int, len(fields))
		for col, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				v = ten.Corrupt
				invalid = append(invalid, CellError{Row: len(grid) + 1, Col: col + 1, Token: tok})
			}
			row[col] = v
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("gridfile: cannot read grid: %w", err)
	}

	return grid, invalid, nil
}

// Unmarshal decodes a grid from text.
func Unmarshal(data []byte) (ten.Grid, []CellError) {
	grid, invalid, _ := Decode(bytes.NewReader(data))
	return grid, invalid
}

// ReadFile decodes the grid stored at path. A leading ~ expands to the
// home directory.
func ReadFile(path string) (ten.Grid, []CellError, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("gridfile: cannot open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile stores grid at path, creating parent directories as needed.
func WriteFile(path string, grid ten.Grid) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("gridfile: cannot create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, Marshal(grid), 0o644); err != nil {
		return fmt.Errorf("gridfile: cannot write %s: %w", path, err)
	}
	return nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("gridfile: empty path")
	}
	if path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("gridfile: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
