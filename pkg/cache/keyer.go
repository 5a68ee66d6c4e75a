package cache

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies a layout pass over inputs with the given hash.
	LayoutKey(inputHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered artifact of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the options that change the result of a layout pass.
type LayoutKeyOpts struct {
	StrictKinds bool `json:"strict_kinds,omitempty"`
	MaxEdges    int  `json:"max_edges,omitempty"`
}

// ArtifactKeyOpts are the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	VizType     string  `json:"viz_type,omitempty"`
	Tooltips    bool    `json:"tooltips,omitempty"`
	StateColors bool    `json:"state_colors,omitempty"`
	Title       string  `json:"title,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
	Detailed    bool    `json:"detailed,omitempty"`
}

// DefaultKeyer builds keys of the form "<kind>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(inputHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", inputHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
