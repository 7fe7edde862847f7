package imgcodec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"strconv"
	"strings"
)

func newSVGDecoder(sink Sink) Decoder {
	d := &bufferingDecoder{sink: sink}
	d.decode = decodeSVG
	return d
}

// svgRoot captures just enough of the <svg> root element to recover its
// intrinsic pixel size.
type svgRoot struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
}

// decodeSVG waits for a complete, well-formed <svg>...</svg> document (spec
// says SVG is "rasterized once </svg> is seen"), then fills the image with
// a flat color rather than rasterizing real vector content: no SVG
// rasterizer is available anywhere in the retrieved pack (see DESIGN.md),
// so this codec only recovers intrinsic geometry and emits a placeholder
// raster sized to it.
func decodeSVG(data []byte, sink Sink) error {
	if !bytes.Contains(data, []byte("</svg>")) {
		return errNeedMoreInput
	}
	var root svgRoot
	if err := xml.Unmarshal(data, &root); err != nil {
		return err
	}
	width, height, ok := svgDimensions(root)
	if !ok {
		return errors.New("imgcodec: SVG document has no usable width/height or viewBox")
	}
	// currentColor placeholder: a real viewer would pass its foreground
	// color here; mid-gray stands in since no viewer binding exists yet.
	return solidFill(width, height, color.Gray{Y: 128}, sink)
}

func svgDimensions(root svgRoot) (int, int, bool) {
	if w, ok := parseSVGLength(root.Width); ok {
		if h, ok := parseSVGLength(root.Height); ok {
			return w, h, true
		}
	}
	parts := strings.Fields(root.ViewBox)
	if len(parts) == 4 {
		w, errW := strconv.ParseFloat(parts[2], 64)
		h, errH := strconv.ParseFloat(parts[3], 64)
		if errW == nil && errH == nil && w > 0 && h > 0 {
			return int(w), int(h), true
		}
	}
	return 0, 0, false
}

// parseSVGLength strips a trailing "px" unit (the only unit this codec
// understands) and parses the remainder.
func parseSVGLength(s string) (int, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return int(v), true
}
