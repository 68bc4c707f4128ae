package figure

// Figure is a chart in plotly-compatible JSON: a list of traces plus a
// layout. The dashboard page and the HTML export feed these straight into
// plotly.js, so field names follow the plotly schema, not Go conventions.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type          string       `json:"type"`
	Mode          string       `json:"mode,omitempty"`
	Name          string       `json:"name,omitempty"`
	X             []any        `json:"x,omitempty"`
	Y             any          `json:"y,omitempty"` // []float64, or []string for category axes
	Z             [][]*float64 `json:"z,omitempty"` // nil cells serialize as null gaps
	Text          []string     `json:"text,omitempty"`
	TextPosition  string       `json:"textposition,omitempty"`
	HoverText     []string     `json:"hovertext,omitempty"`
	HoverTemplate string       `json:"hovertemplate,omitempty"`
	HoverInfo     string       `json:"hoverinfo,omitempty"`
	Labels        []string     `json:"labels,omitempty"`
	Values        []float64    `json:"values,omitempty"`
	Hole          float64      `json:"hole,omitempty"`
	NBinsX        int          `json:"nbinsx,omitempty"`
	Line          *Line        `json:"line,omitempty"`
	Marker        *Marker      `json:"marker,omitempty"`
	Fill          string       `json:"fill,omitempty"`
	FillColor     string       `json:"fillcolor,omitempty"`
	Box           *BoxOptions  `json:"box,omitempty"`
	BoxPoints     string       `json:"boxpoints,omitempty"`
	ShowLegend    *bool        `json:"showlegend,omitempty"`
	ColorScale    string       `json:"colorscale,omitempty"`
	ReverseScale  bool         `json:"reversescale,omitempty"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

type Marker struct {
	Color      any       `json:"color,omitempty"` // single color or per-point values
	Colors     []string  `json:"colors,omitempty"`
	Size       float64   `json:"size,omitempty"`
	Opacity    float64   `json:"opacity,omitempty"`
	ColorScale string    `json:"colorscale,omitempty"`
	ShowScale  bool      `json:"showscale,omitempty"`
	Line       *Line     `json:"line,omitempty"`
	ColorBar   *ColorBar `json:"colorbar,omitempty"`
}

type ColorBar struct {
	Title string `json:"title,omitempty"`
}

type BoxOptions struct {
	Visible bool `json:"visible"`
}

type Layout struct {
	Template    string       `json:"template,omitempty"`
	Title       *Title       `json:"title,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	Shapes      []Shape      `json:"shapes,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Height      int          `json:"height,omitempty"`
	BarMode     string       `json:"barmode,omitempty"`
	BoxMode     string       `json:"boxmode,omitempty"`
	ViolinMode  string       `json:"violinmode,omitempty"`
	HoverMode   string       `json:"hovermode,omitempty"`
	ShowLegend  *bool        `json:"showlegend,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	Margin      *Margin      `json:"margin,omitempty"`
}

type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x,omitempty"`
	XAnchor string  `json:"xanchor,omitempty"`
}

type Axis struct {
	Title         string    `json:"title,omitempty"`
	Type          string    `json:"type,omitempty"`
	Range         []float64 `json:"range,omitempty"`
	Visible       *bool     `json:"visible,omitempty"`
	GridColor     string    `json:"gridcolor,omitempty"`
	CategoryOrder string    `json:"categoryorder,omitempty"`
	CategoryArray []string  `json:"categoryarray,omitempty"`
}

type Shape struct {
	Type      string  `json:"type"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	X0        float64 `json:"x0"`
	X1        float64 `json:"x1"`
	Y0        float64 `json:"y0"`
	Y1        float64 `json:"y1"`
	FillColor string  `json:"fillcolor,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`
	Layer     string  `json:"layer,omitempty"`
	Line      *Line   `json:"line,omitempty"`
}

type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
}

type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	XAnchor     string  `json:"xanchor,omitempty"`
	YAnchor     string  `json:"yanchor,omitempty"`
	BgColor     string  `json:"bgcolor,omitempty"`
	TraceOrder  string  `json:"traceorder,omitempty"`
}

type Margin struct {
	Top    int `json:"t,omitempty"`
	Bottom int `json:"b,omitempty"`
	Left   int `json:"l,omitempty"`
	Right  int `json:"r,omitempty"`
}

// Bool is a helper for the optional bool fields.
func Bool(v bool) *bool { return &v }

// Empty is the placeholder figure shown when a chart has nothing to plot.
func Empty(title string) Figure {
	if title == "" {
		title = "No data to display"
	}
	hidden := Bool(false)
	return Figure{
		Data: []Trace{},
		Layout: Layout{
			Title: &Title{Text: title},
			XAxis: &Axis{Visible: hidden},
			YAxis: &Axis{Visible: hidden},
		},
	}
}

// HLine draws a horizontal reference line across the full plot width with
// an optional right-aligned label.
func HLine(y float64, color, dash, label string) (Shape, *Annotation) {
	shape := Shape{
		Type: "line",
		XRef: "paper",
		X0:   0, X1: 1,
		Y0: y, Y1: y,
		Line: &Line{Color: color, Dash: dash, Width: 1},
	}
	if label == "" {
		return shape, nil
	}
	return shape, &Annotation{
		Text: label,
		X:    1, XRef: "paper",
		Y:       y,
		XAnchor: "left",
	}
}

// VLine draws a vertical reference line across the full plot height.
func VLine(x float64, color, dash, label string) (Shape, *Annotation) {
	shape := Shape{
		Type: "line",
		YRef: "paper",
		X0:   x, X1: x,
		Y0: 0, Y1: 1,
		Line: &Line{Color: color, Dash: dash, Width: 1},
	}
	if label == "" {
		return shape, nil
	}
	return shape, &Annotation{
		Text: label,
		X:    x,
		Y:    1, YRef: "paper",
		YAnchor: "bottom",
	}
}
