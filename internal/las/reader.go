package las

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads LAS text into a File. Both wrapped and unwrapped data
// sections are accepted: data values are consumed token by token and
// folded into rows of one value per declared curve, so line boundaries in
// the ~ASCII section carry no meaning.
func Parse(text string) (*File, error) {
	f := &File{Null: DefaultNull}

	var section byte
	var tokens []string
	sawSection := false

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, "~") {
			if len(trimmed) < 2 {
				return nil, fmt.Errorf("line %d: empty section marker", lineNum)
			}
			section = byte(unicode.ToUpper(rune(trimmed[1])))
			sawSection = true
			continue
		}

		if !sawSection {
			return nil, fmt.Errorf("line %d: content before first section marker", lineNum)
		}

		switch section {
		case 'V':
			e, err := parseEntry(trimmed)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			f.Version = append(f.Version, e)
			if e.Mnem == "WRAP" && strings.EqualFold(e.Value, "YES") {
				f.Wrap = true
			}
		case 'W':
			e, err := parseEntry(trimmed)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			f.Well = append(f.Well, e)
			if e.Mnem == "NULL" && e.Value != "" {
				null, err := strconv.ParseFloat(e.Value, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid NULL value %q", lineNum, e.Value)
				}
				f.Null = null
			}
		case 'C':
			e, err := parseEntry(trimmed)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			f.Curves = append(f.Curves, CurveInfo{Mnem: e.Mnem, Unit: e.Unit, Descr: e.Descr})
		case 'P':
			e, err := parseEntry(trimmed)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			f.Params = append(f.Params, e)
		case 'O':
			f.Other = append(f.Other, trimmed)
		case 'A':
			tokens = append(tokens, strings.Fields(trimmed)...)
		default:
			return nil, fmt.Errorf("line %d: unknown section ~%c", lineNum, section)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	if len(f.Curves) == 0 {
		return nil, fmt.Errorf("no ~Curve section or no curves declared")
	}
	if len(tokens)%len(f.Curves) != 0 {
		return nil, fmt.Errorf("data section has %d values, not a multiple of %d curves",
			len(tokens), len(f.Curves))
	}

	width := len(f.Curves)
	f.Data = make([][]float64, 0, len(tokens)/width)
	for i := 0; i < len(tokens); i += width {
		row := make([]float64, width)
		for j := 0; j < width; j++ {
			v, err := strconv.ParseFloat(tokens[i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("data row %d: invalid value %q", i/width+1, tokens[i+j])
			}
			if v == f.Null {
				v = math.NaN()
			}
			row[j] = v
		}
		f.Data = append(f.Data, row)
	}

	return f, nil
}

// parseEntry splits a header line of the form "MNEM.UNIT VALUE : DESCR".
// The unit runs from the first dot to the first whitespace; the
// description follows the last colon.
func parseEntry(line string) (Entry, error) {
	dot := strings.Index(line, ".")
	if dot < 0 {
		return Entry{}, fmt.Errorf("header line missing mnemonic delimiter: %q", line)
	}

	e := Entry{Mnem: strings.TrimSpace(line[:dot])}
	if e.Mnem == "" {
		return Entry{}, fmt.Errorf("header line with empty mnemonic: %q", line)
	}

	rest := line[dot+1:]
	space := strings.IndexFunc(rest, unicode.IsSpace)
	if space < 0 {
		e.Unit = rest
		return e, nil
	}
	e.Unit = rest[:space]
	tail := rest[space:]

	if colon := strings.LastIndex(tail, ":"); colon >= 0 {
		e.Value = strings.TrimSpace(tail[:colon])
		e.Descr = strings.TrimSpace(tail[colon+1:])
	} else {
		e.Value = strings.TrimSpace(tail)
	}
	return e, nil
}

func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
