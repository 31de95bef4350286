package pkg

import (
	"log/slog"
	"strings"
)

const (
	interfaceKeyword = "interface"
	exportPrefix     = "export "
	closingBrace     = "}"
	optionalSuffix   = " (optional)"
)

// Fields maps field name into its type.
type Fields map[string]string

// InterfaceMap maps interface name into its fields.
type InterfaceMap map[string]Fields

// InterfaceHeader is a line that starts interface declaration.
type InterfaceHeader struct {
	Name      string
	StartLine int
	Exported  bool
}

// Field is one `name: type;` line from interface body.
type Field struct {
	Name string
	Type string
}

// Parser collects interfaces from TypeScript source.
// Detection is plain substring search, so keyword inside string literal or
// comment is also taken as interface header.
type Parser struct {
	ExportedOnly bool
}

func NewParser(exportedOnly bool) Parser {
	return Parser{ExportedOnly: exportedOnly}
}

func (p Parser) marker() string {
	if p.ExportedOnly {
		return exportPrefix + interfaceKeyword
	}
	return interfaceKeyword
}

// CollectInterfaceMap creates map relating interface names into their fields.
// Body without closing brace runs until end of contents.
func (p Parser) CollectInterfaceMap(contents string) InterfaceMap {
	interfaces := InterfaceMap{}
	lines := sourceLines(contents)
	marker := p.marker()
	for idx, line := range lines {
		header, ok := parseHeader(line, idx, marker)
		if !ok {
			continue
		}
		fields := Fields{}
		for _, bodyLine := range interfaceBody(lines, header.StartLine) {
			if field, ok := parseField(bodyLine); ok {
				fields[field.Name] = field.Type
			}
		}
		slog.Debug("interface collected", "name", header.Name, "line", idx+1, "fields", len(fields))
		interfaces[header.Name] = fields
	}
	return interfaces
}

// sourceLines splits contents into lines without line terminators.
func sourceLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for idx := range lines {
		lines[idx] = strings.TrimSuffix(lines[idx], "\r")
	}
	return lines
}

func parseHeader(line string, idx int, marker string) (InterfaceHeader, bool) {
	start := strings.Index(line, marker)
	if start < 0 {
		return InterfaceHeader{}, false
	}
	rest := line[start+len(marker):]
	if end := strings.IndexAny(rest, "<{"); end >= 0 {
		rest = rest[:end]
	}
	return InterfaceHeader{
		Name:      strings.TrimSpace(rest),
		StartLine: idx + 1,
		Exported:  strings.Contains(line, exportPrefix+interfaceKeyword),
	}, true
}

// interfaceBody returns lines from start until the first line which is exactly "}".
func interfaceBody(lines []string, start int) []string {
	if start >= len(lines) {
		return nil
	}
	for idx := start; idx < len(lines); idx++ {
		if lines[idx] == closingBrace {
			return lines[start:idx]
		}
	}
	return lines[start:]
}

// parseField turns `name: type;` into Field.
// Lines without exactly one colon are skipped.
func parseField(line string) (Field, bool) {
	if line == "" {
		return Field{}, false
	}
	pair := strings.Split(line, ":")
	if len(pair) != 2 {
		return Field{}, false
	}
	name := strings.ReplaceAll(strings.TrimSpace(pair[0]), ";", "")
	varType := strings.ReplaceAll(strings.TrimSpace(pair[1]), ";", "")
	if strings.HasSuffix(name, "?") {
		name = strings.TrimSuffix(name, "?") + optionalSuffix
	}
	return Field{Name: name, Type: varType}, true
}
