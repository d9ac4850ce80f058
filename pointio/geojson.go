package pointio

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"math"

	"github.com/osuushi/earclip"
	"github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// Read the outer ring of a GeoJSON polygon. The document may be a bare Polygon
// geometry, a Feature, or a FeatureCollection, in which case the first polygon
// feature is used. The repeated closing position is dropped.
func ReadGeoJSON(in io.Reader) ([]earclip.Point, error) {
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading geojson")
	}

	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.Wrap(err, "parsing geojson")
	}

	var geometry *geojson.Geometry
	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing feature collection")
		}
		for _, f := range fc.Features {
			if f.Geometry != nil && f.Geometry.IsPolygon() {
				geometry = f.Geometry
				break
			}
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing feature")
		}
		geometry = f.Geometry
	default:
		geometry, err = geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing geometry")
		}
	}

	if geometry == nil || !geometry.IsPolygon() {
		return nil, errors.New("no polygon geometry found")
	}
	if len(geometry.Polygon) == 0 {
		return nil, errors.New("polygon has no rings")
	}

	ring := geometry.Polygon[0]
	if len(ring) > 1 && samePosition(ring[0], ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}
	points := make([]earclip.Point, len(ring))
	for i, position := range ring {
		if len(position) < 2 {
			return nil, errors.Errorf("position %d has %d coordinates", i, len(position))
		}
		points[i] = earclip.Point{X: position[0], Y: position[1]}
	}
	return points, nil
}

func samePosition(a, b []float64) bool {
	return len(a) >= 2 && len(b) >= 2 && a[0] == b[0] && a[1] == b[1]
}

// Write the polygon and diagonals as a FeatureCollection: the remaining polygon
// (if it still has three vertices), one Point feature per vertex carrying its
// index and class, and one LineString per diagonal carrying its step number.
func WriteGeoJSON(out io.Writer, polygon *earclip.Polygon, diagonals []earclip.Diagonal) error {
	fc := geojson.NewFeatureCollection()

	if polygon.Len() >= 3 {
		ring := make([][]float64, 0, polygon.Len()+1)
		for _, v := range polygon.Vertices {
			ring = append(ring, []float64{v.X, v.Y})
		}
		ring = append(ring, ring[0])
		f := geojson.NewPolygonFeature([][][]float64{ring})
		f.SetProperty("state", polygon.State().String())
		f.SetProperty("area", math.Abs(polygon.SignedArea()))
		fc.AddFeature(f)
	}

	for i, v := range polygon.Vertices {
		f := geojson.NewPointFeature([]float64{v.X, v.Y})
		f.SetProperty("index", i)
		f.SetProperty("class", v.Class())
		f.SetProperty("reflex", v.Reflex)
		f.SetProperty("ear", v.Ear)
		fc.AddFeature(f)
	}

	for i, d := range diagonals {
		f := geojson.NewLineStringFeature([][]float64{{d.Start.X, d.Start.Y}, {d.End.X, d.End.Y}})
		f.SetProperty("step", i+1)
		fc.AddFeature(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding geojson")
	}
	_, err = out.Write(data)
	return errors.Wrap(err, "writing geojson")
}
