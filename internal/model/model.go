package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Dimension identifies a board cross-section in inches. Cuts and boards only
// interact within the same cross-section.
type Dimension struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (d Dimension) String() string {
	return fmt.Sprintf("%gx%g", d.Width, d.Height)
}

// CutRequest represents a required piece to be cut from purchased stock.
type CutRequest struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Width    float64 `json:"width"`    // cross-section width (inches)
	Height   float64 `json:"height"`   // cross-section height (inches)
	Length   float64 `json:"length"`   // cut length (inches)
	Quantity int     `json:"quantity"` // how many of this cut are required
}

func NewCutRequest(label string, w, h, length float64, qty int) CutRequest {
	return CutRequest{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Width:    w,
		Height:   h,
		Length:   length,
		Quantity: qty,
	}
}

// Dimension returns the cut's cross-section.
func (c CutRequest) Dimension() Dimension {
	return Dimension{Width: c.Width, Height: c.Height}
}

// Validate checks the cut request for structurally invalid values.
func (c CutRequest) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("cut %q: cross-section %s must be positive: %w", c.Label, c.Dimension(), ErrInvalidInput)
	}
	if c.Length <= 0 {
		return fmt.Errorf("cut %q: length %g must be positive: %w", c.Label, c.Length, ErrInvalidInput)
	}
	if c.Quantity <= 0 {
		return fmt.Errorf("cut %q: quantity %d must be positive: %w", c.Label, c.Quantity, ErrInvalidInput)
	}
	return nil
}

// BoardOffering represents a purchasable board type. Its identity in every
// optimization output is its 0-based position in the input sequence.
type BoardOffering struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Width  float64 `json:"width"`  // cross-section width (inches)
	Height float64 `json:"height"` // cross-section height (inches)
	Length float64 `json:"length"` // board length (inches)
	Price  float64 `json:"price"`  // cost of one board
}

func NewBoardOffering(label string, w, h, length, price float64) BoardOffering {
	return BoardOffering{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  w,
		Height: h,
		Length: length,
		Price:  price,
	}
}

// Dimension returns the board's cross-section.
func (b BoardOffering) Dimension() Dimension {
	return Dimension{Width: b.Width, Height: b.Height}
}

// Validate checks the board offering for structurally invalid values.
func (b BoardOffering) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("board %q: cross-section %s must be positive: %w", b.Label, b.Dimension(), ErrInvalidInput)
	}
	if b.Length <= 0 {
		return fmt.Errorf("board %q: length %g must be positive: %w", b.Label, b.Length, ErrInvalidInput)
	}
	if b.Price < 0 {
		return fmt.Errorf("board %q: price %g must not be negative: %w", b.Label, b.Price, ErrInvalidInput)
	}
	return nil
}

// PhysicalBoard is one purchased board instance with the cut lengths placed
// on it. The sum of cuts never exceeds the board length.
type PhysicalBoard struct {
	BoardIndex int       `json:"board_index"` // index into the board offerings
	Length     float64   `json:"length"`      // length of the board type
	Cuts       []float64 `json:"cuts"`        // placed cut lengths
}

// Used returns the total length consumed by cuts on this board.
func (p PhysicalBoard) Used() float64 {
	var total float64
	for _, c := range p.Cuts {
		total += c
	}
	return total
}

// Waste returns the unused length left on this board.
func (p PhysicalBoard) Waste() float64 {
	return p.Length - p.Used()
}

// OptimizeResult holds the full purchase and cutting solution. All maps are
// keyed by the 0-based board offering index from the input sequence.
type OptimizeResult struct {
	BoardPlan    map[int]int               `json:"board_plan"`    // boards to buy per type
	CutPlan      map[int][]PhysicalBoard   `json:"cut_plan"`      // physical boards per type
	TotalCost    float64                   `json:"total_cost"`
	WasteSummary map[int]float64           `json:"waste_summary"` // total leftover length per type
}

// TotalWaste returns the summed leftover length across all board types.
func (r OptimizeResult) TotalWaste() float64 {
	var total float64
	for _, w := range r.WasteSummary {
		total += w
	}
	return total
}

// BoardsUsed returns the total number of physical boards purchased.
func (r OptimizeResult) BoardsUsed() int {
	var total int
	for _, n := range r.BoardPlan {
		total += n
	}
	return total
}

// Project ties everything together for save/load.
type Project struct {
	Name     string          `json:"name"`
	Cuts     []CutRequest    `json:"cuts"`
	Boards   []BoardOffering `json:"boards"`
	Settings Settings        `json:"settings"`
	Result   *OptimizeResult `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Cuts:     []CutRequest{},
		Boards:   []BoardOffering{},
		Settings: DefaultSettings(),
	}
}
