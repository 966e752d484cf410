// Package export converts live shape geometry into canonical rounded
// coordinates and serializes the annotation set into line-oriented records.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"booth-mapper/internal/annotation"
	"booth-mapper/pkg/geometry"
)

// RectCoords is the canonical corner representation of a rectangle.
type RectCoords struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// CircleCoords is the canonical representation of a circle.
type CircleCoords struct {
	CX int `json:"cx"`
	CY int `json:"cy"`
	R  int `json:"r"`
}

// PointCoords is one canonical polygon vertex.
type PointCoords struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Record is one export line: a shape rendered against one destination target.
type Record struct {
	Target  string        `json:"target"`
	Name    string        `json:"name"`
	BoothNo string        `json:"boothNo"`
	Type    string        `json:"type"`
	Rect    *RectCoords   `json:"rect,omitempty"`
	Circle  *CircleCoords `json:"circle,omitempty"`
	Points  []PointCoords `json:"points,omitempty"`
}

// RectToCoords rounds a rectangle into canonical corners. Each coordinate is
// rounded half away from zero independently; the far corner is derived from
// the rounded origin plus the rounded dimensions, matching the fixed
// round-then-derive order.
func RectToCoords(r geometry.Rect) RectCoords {
	x1 := geometry.RoundCoord(r.X)
	y1 := geometry.RoundCoord(r.Y)
	return RectCoords{
		X1: x1,
		Y1: y1,
		X2: x1 + geometry.RoundCoord(r.Width),
		Y2: y1 + geometry.RoundCoord(r.Height),
	}
}

// CircleToCoords rounds a circle into canonical center and radius.
func CircleToCoords(c geometry.Circle) CircleCoords {
	return CircleCoords{
		CX: geometry.RoundCoord(c.CX),
		CY: geometry.RoundCoord(c.CY),
		R:  geometry.RoundCoord(c.R),
	}
}

// PolygonToCoords rounds a flat vertex list into canonical points in the
// original vertex order.
func PolygonToCoords(pairs []float64) []PointCoords {
	pts := make([]PointCoords, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		pts = append(pts, PointCoords{
			X: geometry.RoundCoord(pairs[i]),
			Y: geometry.RoundCoord(pairs[i+1]),
		})
	}
	return pts
}

// RecordFor builds the export record for one shape against one target id.
func RecordFor(s *annotation.Shape, target string) Record {
	rec := Record{
		Target:  target,
		Name:    s.Name,
		BoothNo: s.BoothNo,
		Type:    s.Kind.String(),
	}
	switch s.Kind {
	case annotation.KindRect:
		coords := RectToCoords(s.Rect)
		rec.Rect = &coords
	case annotation.KindCircle:
		coords := CircleToCoords(s.Circle)
		rec.Circle = &coords
	case annotation.KindPolygon:
		rec.Points = PolygonToCoords(s.Polygon)
	}
	return rec
}

// ExportAll serializes every shape against every target id, one record line
// per (shape, target) pair, in shape order then target order. The payload is
// JSON so free-text fields cannot corrupt a record regardless of the
// characters they contain.
func ExportAll(shapes []*annotation.Shape, targets []string) (string, error) {
	var b strings.Builder
	for _, s := range shapes {
		for _, target := range targets {
			rec := RecordFor(s, target)
			payload, err := json.Marshal(rec)
			if err != nil {
				return "", fmt.Errorf("encoding shape %s for target %s: %w", s.ID, target, err)
			}
			b.WriteString(target)
			b.WriteByte('\t')
			b.Write(payload)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
