package tourstore

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/tourbook/internal/domain"
)

// Format selects the on-disk encoding of the backing store.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

const schemaVersion = 1

// ParseFormat maps a config value to a Format. Empty means "pick by extension".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unsupported store format %q (expected yaml|json|xml)", s)
	}
}

// FormatForPath picks the codec from the file extension, defaulting to YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".xml":
		return FormatXML
	default:
		return FormatYAML
	}
}

// record is the stored shape of one tour. Type is the variant discriminator.
type record struct {
	Type     string  `yaml:"type" json:"type" xml:"type,attr"`
	ID       string  `yaml:"id,omitempty" json:"id,omitempty" xml:"id,attr,omitempty"`
	Name     string  `yaml:"name" json:"name" xml:"name"`
	Duration float64 `yaml:"duration" json:"duration" xml:"duration"`
	Stops    int     `yaml:"stops" json:"stops" xml:"stops"`
	InHours  bool    `yaml:"in_hours" json:"in_hours" xml:"inHours"`
	Cost     float64 `yaml:"cost" json:"cost" xml:"cost"`
}

type document struct {
	XMLName xml.Name `yaml:"-" json:"-" xml:"tours"`
	Version int      `yaml:"version" json:"version" xml:"version,attr"`
	Tours   []record `yaml:"tours" json:"tours" xml:"tour"`
}

func encode(f Format, tours []domain.Tour) ([]byte, error) {
	doc := document{
		Version: schemaVersion,
		Tours:   make([]record, 0, len(tours)),
	}
	for _, t := range tours {
		doc.Tours = append(doc.Tours, toRecord(t))
	}

	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case FormatXML:
		b, err := xml.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		out := []byte(xml.Header)
		out = append(out, b...)
		return append(out, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported store format %q", f)
	}
}

func decode(f Format, b []byte) ([]domain.Tour, error) {
	var doc document
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(b, &doc)
	case FormatXML:
		err = xml.Unmarshal(b, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(b, &doc)
	default:
		err = fmt.Errorf("unsupported store format %q", f)
	}
	if err != nil {
		return nil, err
	}

	if doc.Version > schemaVersion {
		return nil, fmt.Errorf("store version %d is newer than supported version %d", doc.Version, schemaVersion)
	}

	tours := make([]domain.Tour, 0, len(doc.Tours))
	for i, r := range doc.Tours {
		t, err := fromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("tours[%d]: %w", i, err)
		}
		tours = append(tours, t)
	}
	return tours, nil
}

func toRecord(t domain.Tour) record {
	return record{
		Type:     string(t.Variant),
		ID:       t.ID,
		Name:     t.Name,
		Duration: t.Duration,
		Stops:    t.Stops,
		InHours:  t.IsInHours,
		Cost:     t.Cost,
	}
}

func fromRecord(r record) (domain.Tour, error) {
	v := domain.Variant(strings.TrimSpace(r.Type))
	if !v.Valid() {
		return domain.Tour{}, fmt.Errorf("unknown tour type %q", r.Type)
	}

	t := domain.Tour{
		ID:        r.ID,
		Variant:   v,
		Name:      r.Name,
		Duration:  r.Duration,
		Stops:     r.Stops,
		IsInHours: r.InHours,
		Cost:      r.Cost,
	}
	if err := t.Validate(); err != nil {
		return domain.Tour{}, err
	}
	return t, nil
}
