package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SceneFileExt is the extension of scene text files
const SceneFileExt = ".txt"

// Record is one line of a scene text file: a type letter and four numbers
type Record struct {
	Type   byte       // Record type (e, a, o, r, t, c, d, p, i)
	Values [4]float64 // Record values
	Line   int        // Source line number, 1-based
}

// SceneText contains the records of a scene text file grouped by kind.
// Objects, colors, lights, spot positions and intensities keep file order
// because they are matched up by position.
type SceneText struct {
	Eye           *Record  // Camera position, fourth value enables anti-aliasing
	Ambient       *Record  // Ambient color
	Objects       []Record // Spheres (fourth value >= 0) or planes (< 0), types o/r/t
	Colors        []Record // One color per object, fourth value is the shininess
	Lights        []Record // Light directions, fourth value 1 marks a spotlight
	SpotPositions []Record // Spotlight positions, fourth value is the cutoff cosine
	Intensities   []Record // One intensity per light
}

// SceneTextParser accumulates records while reading a scene text file
type SceneTextParser struct {
	scene *SceneText
	line  int
}

// NewSceneTextParser creates a new parser instance
func NewSceneTextParser() *SceneTextParser {
	return &SceneTextParser{
		scene: &SceneText{},
	}
}

// ParseSceneText parses scene text content from an io.Reader
func ParseSceneText(reader io.Reader) (*SceneText, error) {
	parser := NewSceneTextParser()

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return parser.scene, nil
}

// LoadSceneText loads and parses a scene text file
func LoadSceneText(filename string) (*SceneText, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParseSceneText(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filename), err)
	}
	return scene, nil
}

// processLine parses a single line and files the record by type
func (p *SceneTextParser) processLine(text string) error {
	p.line++

	line := strings.TrimSpace(text)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	record, err := p.parseRecord(line)
	if err != nil {
		return err
	}

	switch record.Type {
	case 'e':
		p.scene.Eye = &record
	case 'a':
		p.scene.Ambient = &record
	case 'o', 'r', 't':
		p.scene.Objects = append(p.scene.Objects, record)
	case 'c':
		p.scene.Colors = append(p.scene.Colors, record)
	case 'd':
		p.scene.Lights = append(p.scene.Lights, record)
	case 'p':
		p.scene.SpotPositions = append(p.scene.SpotPositions, record)
	case 'i':
		p.scene.Intensities = append(p.scene.Intensities, record)
	default:
		return fmt.Errorf("line %d: unknown record type %q", p.line, record.Type)
	}
	return nil
}

// parseRecord splits a line into its type letter and four values
func (p *SceneTextParser) parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields[0]) != 1 {
		return Record{}, fmt.Errorf("line %d: record type must be a single letter, got %q", p.line, fields[0])
	}
	if len(fields) != 5 {
		return Record{}, fmt.Errorf("line %d: expected 4 values, got %d", p.line, len(fields)-1)
	}

	record := Record{Type: fields[0][0], Line: p.line}
	for i, field := range fields[1:] {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Record{}, fmt.Errorf("line %d: invalid value %q: %w", p.line, field, err)
		}
		record.Values[i] = value
	}
	return record, nil
}

// validateFilePath validates that a file path is safe to open
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	cleanPath := filepath.Clean(filename)

	// Only allow files in a scenes/ directory
	if !strings.HasPrefix(cleanPath, "scenes"+string(filepath.Separator)) &&
		!strings.Contains(cleanPath, string(filepath.Separator)+"scenes"+string(filepath.Separator)) {
		return fmt.Errorf("file path must be in scenes/ directory")
	}

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid file path: directory traversal not allowed")
	}

	if !strings.HasSuffix(strings.ToLower(cleanPath), SceneFileExt) {
		return fmt.Errorf("invalid file type: only %s files are allowed", SceneFileExt)
	}

	if len(cleanPath) > 255 {
		return fmt.Errorf("file path too long")
	}

	return nil
}
