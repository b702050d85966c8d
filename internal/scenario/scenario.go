package scenario

import (
	"embed"
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/kapu/chess-melee-go/internal/melee"
)

//go:embed melee.yaml
var defaultFiles embed.FS

// PiecePlacement is one piece of a scenario document.
type PiecePlacement struct {
	Kind   string `yaml:"kind"`
	Color  string `yaml:"color"`
	Square string `yaml:"square"`
}

// Scenario is a starting position for the melee solver.
type Scenario struct {
	Name   string           `yaml:"name"`
	Pieces []PiecePlacement `yaml:"pieces"`
}

// Default returns the embedded reference melee (6 white, 6 black).
func Default() (*Scenario, error) {
	raw, err := defaultFiles.ReadFile("melee.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded scenario: %w", err)
	}
	return Parse(raw)
}

// LoadFile reads and validates a scenario document from disk.
func LoadFile(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML scenario document and validates it.
func Parse(raw []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if strings.TrimSpace(s.Name) == "" {
		s.Name = "melee"
	}
	if len(s.Pieces) < 2 {
		return nil, fmt.Errorf("scenario %q needs at least 2 pieces, has %d", s.Name, len(s.Pieces))
	}
	seen := make(map[string]bool, len(s.Pieces))
	for i, p := range s.Pieces {
		kind := melee.Kind(strings.ToLower(strings.TrimSpace(p.Kind)))
		if !melee.KnownKind(kind) {
			return nil, fmt.Errorf("piece %d: unknown kind %q", i, p.Kind)
		}
		color := melee.Color(strings.ToLower(strings.TrimSpace(p.Color)))
		if !melee.KnownColor(color) {
			return nil, fmt.Errorf("piece %d: unknown color %q", i, p.Color)
		}
		sq := strings.ToLower(strings.TrimSpace(p.Square))
		if _, _, ok := melee.ParseSquare(sq); !ok {
			return nil, fmt.Errorf("piece %d: bad square %q", i, p.Square)
		}
		if seen[sq] {
			return nil, fmt.Errorf("piece %d: square %s occupied twice", i, sq)
		}
		seen[sq] = true
		s.Pieces[i] = PiecePlacement{Kind: string(kind), Color: string(color), Square: sq}
	}
	return &s, nil
}

// Board builds the starting board for the scenario.
func (s *Scenario) Board() (*melee.Board, error) {
	placements := make([]melee.Piece, 0, len(s.Pieces))
	for _, p := range s.Pieces {
		placements = append(placements, melee.Piece{
			Kind:   melee.Kind(p.Kind),
			Color:  melee.Color(p.Color),
			Square: p.Square,
		})
	}
	return melee.NewBoard(placements)
}

// CountByColor returns the number of white and black pieces.
func (s *Scenario) CountByColor() (white, black int) {
	for _, p := range s.Pieces {
		if melee.Color(p.Color) == melee.White {
			white++
		} else {
			black++
		}
	}
	return white, black
}
