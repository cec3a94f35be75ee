package model

import "github.com/google/uuid"

// BoardPreset represents a reusable board definition in the user's catalog,
// typically the dimensional lumber their supplier stocks.
type BoardPreset struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Price  float64 `json:"price"`
}

// NewBoardPreset creates a new BoardPreset with a generated ID.
func NewBoardPreset(name string, width, height, length, price float64) BoardPreset {
	return BoardPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
		Length: length,
		Price:  price,
	}
}

// ToOffering converts a preset into a BoardOffering for an optimization run.
func (bp BoardPreset) ToOffering() BoardOffering {
	return NewBoardOffering(bp.Name, bp.Width, bp.Height, bp.Length, bp.Price)
}

// Catalog holds the user's saved board presets.
type Catalog struct {
	Boards []BoardPreset `json:"boards"`
}

// DefaultCatalog returns a catalog populated with common dimensional lumber.
func DefaultCatalog() Catalog {
	return Catalog{
		Boards: []BoardPreset{
			NewBoardPreset("2x4x8'", 2, 4, 96, 8),
			NewBoardPreset("2x4x10'", 2, 4, 120, 11),
			NewBoardPreset("2x4x12'", 2, 4, 144, 13),
			NewBoardPreset("2x6x8'", 2, 6, 96, 12),
			NewBoardPreset("2x6x12'", 2, 6, 144, 18),
			NewBoardPreset("1x4x8'", 1, 4, 96, 6),
			NewBoardPreset("4x4x8'", 4, 4, 96, 20),
		},
	}
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (c *Catalog) FindByID(id string) *BoardPreset {
	for i := range c.Boards {
		if c.Boards[i].ID == id {
			return &c.Boards[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (c *Catalog) FindByName(name string) *BoardPreset {
	for i := range c.Boards {
		if c.Boards[i].Name == name {
			return &c.Boards[i]
		}
	}
	return nil
}

// Names returns the preset names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Boards))
	for i, b := range c.Boards {
		names[i] = b.Name
	}
	return names
}
