package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/geometry"
	"github.com/df07/go-shader-raytracer/pkg/material"
	"github.com/df07/go-shader-raytracer/pkg/renderer"
	"github.com/df07/go-shader-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	ShapeIndex   uint32                 `json:"shapeIndex"`
	Point        [3]float32             `json:"point"`
	Normal       [3]float32             `json:"normal"`
	Distance     float32                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Colour       string                 `json:"colour"` // Final pixel colour, #rrggbb
	Properties   map[string]interface{} `json:"properties"`
}

// inspectPixel casts the ray through the centre of a pixel and describes the
// first object it hits
func inspectPixel(view *scene.WorldView, pixelX, pixelY int) InspectResponse {
	camera := view.Camera()
	ray := camera.RayForPixel(float32(pixelX), float32(pixelY))

	var xs core.Intersections
	view.Intersect(ray, &xs)
	if !xs.HasHit() {
		return InspectResponse{Hit: false, Colour: hexColour(core.Black)}
	}

	comps := view.PrepareComps(xs.Hit(), ray, &xs)
	shape := view.Shape(comps.Shape)

	materialType, materialProps := extractMaterialInfo(view, &shape.Material)
	geometryType, geometryProps := extractGeometryInfo(shape)

	return InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		ShapeIndex:   shape.Index,
		Point:        vec3(comps.Point),
		Normal:       vec3(comps.Normal),
		Distance:     comps.T,
		FrontFace:    !comps.Inside,
		Colour:       hexColour(view.ColorAt(ray)),
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
			"n1":       comps.N1,
			"n2":       comps.N2,
		},
	}
}

// extractMaterialInfo classifies a material by its dominant effect
func extractMaterialInfo(view *scene.WorldView, m *material.Material) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"color":     hexColour(m.Colour),
		"ambient":   m.Ambient,
		"diffuse":   m.Diffuse,
		"specular":  m.Specular,
		"shininess": m.Shininess,
	}

	if m.HasPattern() {
		p := view.Pattern(int(m.PatternIndex))
		properties["pattern"] = map[string]interface{}{
			"index": m.PatternIndex,
			"kind":  p.Kind.String(),
			"a":     hexColour(p.A),
			"b":     hexColour(p.B),
		}
	}

	switch {
	case m.Transparency > 0:
		properties["transparency"] = m.Transparency
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["reflective"] = m.Reflective
		return "transparent", properties
	case m.Reflective > 0:
		properties["reflective"] = m.Reflective
		return "reflective", properties
	case m.HasPattern():
		return "patterned", properties
	default:
		return "phong", properties
	}
}

// extractGeometryInfo describes a shape in world space
func extractGeometryInfo(shape *geometry.Shape) (string, map[string]interface{}) {
	transform := shape.Transform()
	properties := map[string]interface{}{
		"index":  shape.Index,
		"origin": vec3(transform.Mul4x1(core.Origin)),
	}

	switch shape.Kind {
	case geometry.Sphere:
		// Radius along the object x axis
		properties["radius"] = transform.Mul4x1(core.Vector(1, 0, 0)).Len()
	case geometry.Plane:
		properties["normal"] = vec3(shape.NormalAt(transform.Mul4x1(core.Origin)))
	case geometry.Cube:
		properties["halfExtents"] = [3]float32{
			transform.Mul4x1(core.Vector(1, 0, 0)).Len(),
			transform.Mul4x1(core.Vector(0, 1, 0)).Len(),
			transform.Mul4x1(core.Vector(0, 0, 1)).Len(),
		}
	}
	return shape.Kind.String(), properties
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	view, err := s.loadView(inspectReq)
	if err != nil {
		writeJSON(w, sceneErrorStatus(err), map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(view, pixelX, pixelY))
}

func vec3(v mgl32.Vec4) [3]float32 {
	return [3]float32{v[0], v[1], v[2]}
}

func hexColour(c core.Colour) string {
	p := renderer.PackColour(c)
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}
