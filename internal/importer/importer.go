// Package importer reads job descriptions from spreadsheets (CSV, Excel) and
// wall elevations from DXF drawings. It supports automatic delimiter
// detection, flexible column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/PaintCalc/internal/input"
	"github.com/piwi3910/PaintCalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Job      model.JobSpec
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Room  int
	Wall  int
	Role  int
	Shape int
	Dims  [3]int
	Paint int
	Coats int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"room":  {"room", "room name", "space"},
	"wall":  {"wall", "wall label", "label", "element", "name"},
	"role":  {"role", "type", "kind"},
	"shape": {"shape", "form"},
	"d1":    {"d1", "dim1", "dimension 1", "side", "base", "radius", "horizontal radius", "width"},
	"d2":    {"d2", "dim2", "dimension 2", "height", "vertical radius"},
	"d3":    {"d3", "dim3", "dimension 3", "top"},
	"paint": {"paint", "colour", "color"},
	"coats": {"coats", "coat", "layers"},
}

// positionalMapping is used when the first row is not a recognised header.
var positionalMapping = ColumnMapping{
	Room:  0,
	Wall:  1,
	Role:  2,
	Shape: 3,
	Dims:  [3]int{4, 5, 6},
	Paint: 7,
	Coats: 8,
}

// Role tells whether a row describes a wall or an obstacle on the previous wall.
type Role int

const (
	RoleWall Role = iota
	RoleObstacle
)

func (r Role) String() string {
	if r == RoleObstacle {
		return "Obstacle"
	}
	return "Wall"
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// A row holding any numeric cell is data, even if a cell such as "Wall"
// matches an alias. Returns the mapping and true if a header was detected,
// or the positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Room:  -1,
		Wall:  -1,
		Role:  -1,
		Shape: -1,
		Dims:  [3]int{-1, -1, -1},
		Paint: -1,
		Coats: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		if _, err := strconv.ParseFloat(normalized, 64); err == nil {
			return positionalMapping, false
		}
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "room":
					setOnce(&mapping.Room, i)
				case "wall":
					setOnce(&mapping.Wall, i)
				case "role":
					setOnce(&mapping.Role, i)
				case "shape":
					setOnce(&mapping.Shape, i)
				case "d1":
					setOnce(&mapping.Dims[0], i)
				case "d2":
					setOnce(&mapping.Dims[1], i)
				case "d3":
					setOnce(&mapping.Dims[2], i)
				case "paint":
					setOnce(&mapping.Paint, i)
				case "coats":
					setOnce(&mapping.Coats, i)
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

func setOnce(field *int, i int) {
	if *field == -1 {
		*field = i
	}
}

// ParseRole converts a role cell into a Role. Empty cells mean a wall.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wall", "w":
		return RoleWall, true
	case "obstacle", "o", "door", "window", "opening":
		return RoleObstacle, true
	default:
		return RoleWall, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parsedRow is a single validated spreadsheet row.
type parsedRow struct {
	room    string
	role    Role
	label   string
	surface model.SurfaceSpec
	paint   string
	coats   int
}

// parseRow extracts one surface from a row using the given column mapping.
// Returns the row, any error message, and any warning messages.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, defaultCoats int) (parsedRow, string, []string) {
	var warnings []string

	role, ok := ParseRole(getCell(row, mapping.Role))
	if !ok {
		return parsedRow{}, fmt.Sprintf("%s: Unknown role '%s' (use Wall or Obstacle)", rowLabel, getCell(row, mapping.Role)), nil
	}

	shapeStr := getCell(row, mapping.Shape)
	if shapeStr == "" {
		return parsedRow{}, fmt.Sprintf("%s: Missing shape", rowLabel), nil
	}
	kind, err := input.ParseShape(shapeStr)
	if err != nil {
		return parsedRow{}, fmt.Sprintf("%s: Invalid shape '%s'", rowLabel, shapeStr), nil
	}

	need := len(kind.Params())
	values := make([]string, 0, need)
	for i, col := range mapping.Dims {
		v := getCell(row, col)
		if i < need {
			if v == "" {
				return parsedRow{}, fmt.Sprintf("%s: Missing %s for %s", rowLabel, kind.Params()[i], kind.DisplayName()), nil
			}
			values = append(values, v)
		} else if v != "" {
			warnings = append(warnings, fmt.Sprintf("%s: Ignoring extra dimension '%s' for %s", rowLabel, v, kind.DisplayName()))
		}
	}
	dims, err := input.ParseDimensions(kind, values)
	if err != nil {
		return parsedRow{}, fmt.Sprintf("%s: Invalid dimension: %v", rowLabel, err), nil
	}

	pr := parsedRow{
		room:    getCell(row, mapping.Room),
		role:    role,
		label:   getCell(row, mapping.Wall),
		surface: model.SurfaceSpec{Shape: string(kind), Dimensions: dims},
	}
	if role == RoleObstacle {
		return pr, "", warnings
	}

	pr.paint = getCell(row, mapping.Paint)
	if pr.paint == "" {
		return parsedRow{}, fmt.Sprintf("%s: Missing paint", rowLabel), nil
	}

	coatsStr := getCell(row, mapping.Coats)
	if coatsStr == "" {
		pr.coats = defaultCoats
		warnings = append(warnings, fmt.Sprintf("%s: No coats given, using %d", rowLabel, defaultCoats))
	} else {
		coats, err := input.ParseCoats(coatsStr)
		if err != nil {
			return parsedRow{}, fmt.Sprintf("%s: Invalid coats '%s'", rowLabel, coatsStr), nil
		}
		pr.coats = coats
	}

	return pr, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports a job from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, defaultCoats int) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", defaultCoats, warnings)
}

// ImportCSVFromReader imports a job from a CSV reader with a specific delimiter.
// This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune, defaultCoats int) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", defaultCoats, nil)
}

// ImportExcel imports a job from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string, defaultCoats int) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", defaultCoats, nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// A new room starts whenever the Room cell changes, so two consecutive
// blocks sharing a name stay separate rooms only if another room sits
// between them. Obstacle rows attach to the wall row above them.
func importFromRows(rows [][]string, rowPrefix string, defaultCoats int, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}
	if defaultCoats < 1 {
		defaultCoats = 1
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Room == -1 {
			missing = append(missing, "Room")
		}
		if mapping.Shape == -1 {
			missing = append(missing, "Shape")
		}
		if mapping.Dims[0] == -1 {
			missing = append(missing, "D1")
		}
		if mapping.Paint == -1 {
			missing = append(missing, "Paint")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) > positionalMapping.Dims[0] {
		// No recognised header: a non-numeric first dimension means an
		// unrecognised header row, so skip it but keep positional mapping.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][positionalMapping.Dims[0]]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	var (
		currentRoom *model.RoomSpec
		currentWall *model.WallSpec
		lastWallBad bool
		roomName    string
		roomStarted bool
	)

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		pr, errMsg, warnings := parseRow(row, mapping, rowLabel, defaultCoats)
		result.Warnings = append(result.Warnings, warnings...)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			if role, _ := ParseRole(getCell(row, mapping.Role)); role == RoleWall {
				lastWallBad = true
				currentWall = nil
			}
			continue
		}

		if pr.role == RoleObstacle {
			switch {
			case lastWallBad:
				result.Errors = append(result.Errors, fmt.Sprintf("%s: Obstacle skipped, its wall was rejected", rowLabel))
			case currentWall == nil || (pr.room != "" && pr.room != roomName):
				result.Errors = append(result.Errors, fmt.Sprintf("%s: Obstacle has no wall above it", rowLabel))
			default:
				currentWall.Obstacles = append(currentWall.Obstacles, pr.surface)
			}
			continue
		}

		if pr.room == "" {
			if !roomStarted {
				pr.room = fmt.Sprintf("Room %d", len(result.Job.Rooms)+1)
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: No room given, using '%s'", rowLabel, pr.room))
			} else {
				pr.room = roomName
			}
		}
		if !roomStarted || pr.room != roomName {
			result.Job.Rooms = append(result.Job.Rooms, model.RoomSpec{Name: pr.room})
			roomName = pr.room
			roomStarted = true
		}
		currentRoom = &result.Job.Rooms[len(result.Job.Rooms)-1]
		currentRoom.Walls = append(currentRoom.Walls, model.WallSpec{
			Label:       pr.label,
			SurfaceSpec: pr.surface,
			Paint:       pr.paint,
			Coats:       pr.coats,
		})
		currentWall = &currentRoom.Walls[len(currentRoom.Walls)-1]
		lastWallBad = false
	}

	return result
}
