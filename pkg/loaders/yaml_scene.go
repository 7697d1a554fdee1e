package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-shader-raytracer/pkg/core"
	"github.com/df07/go-shader-raytracer/pkg/geometry"
	"github.com/df07/go-shader-raytracer/pkg/material"
	"github.com/df07/go-shader-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var (
	// ErrScanFailed reports a scene file that is not valid YAML
	ErrScanFailed = errors.New("scene scan failed")
	// ErrInvalidCameraSize reports a missing camera or one with a
	// non-positive canvas size
	ErrInvalidCameraSize = errors.New("invalid camera size")
	// ErrInvalidData reports a missing, malformed or out-of-range value
	ErrInvalidData = errors.New("invalid scene data")
)

// entry is one item of the top-level scene list
type entry = map[string]interface{}

// sceneLoader turns decoded scene entries into World construction calls
type sceneLoader struct {
	world     *scene.World
	defines   map[string]interface{}
	hasCamera bool
}

// LoadScene parses a YAML scene description. The document is a list of
// entries, each either "add: camera|light|sphere|plane|cube" or
// "define: name" with a "value" and an optional "extend: base".
func LoadScene(r io.Reader) (*scene.World, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return ParseScene(data)
}

// LoadSceneFile loads a YAML scene file from disk
func LoadSceneFile(filename string) (*scene.World, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	world, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return world, nil
}

// ParseScene parses a YAML scene description held in memory
func ParseScene(data []byte) (*scene.World, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidData)
		}
		return nil, fmt.Errorf("%w: %v", ErrScanFailed, err)
	}

	var entries []entry
	if err := root.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: top level must be a list of entries: %v", ErrInvalidData, err)
	}

	loader := &sceneLoader{
		world:   scene.NewWorld(geometry.Camera{}),
		defines: make(map[string]interface{}),
	}
	for i, e := range entries {
		if err := loader.processEntry(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	if !loader.hasCamera {
		return nil, fmt.Errorf("%w: no camera", ErrInvalidCameraSize)
	}
	return loader.world, nil
}

func (l *sceneLoader) processEntry(e entry) error {
	if name, ok := e["define"]; ok {
		return l.define(name, e)
	}

	kind, err := stringField(e, "add")
	if err != nil {
		return err
	}
	switch kind {
	case "camera":
		return l.addCamera(e)
	case "light":
		return l.addLight(e)
	case "sphere":
		return l.addShape(e, geometry.NewSphere())
	case "plane":
		return l.addShape(e, geometry.NewPlane())
	case "cube":
		return l.addShape(e, geometry.NewCube())
	default:
		return fmt.Errorf("%w: unknown object %q", ErrInvalidData, kind)
	}
}

// define stores a named value. With extend, maps are merged over the base
// and lists are appended to it.
func (l *sceneLoader) define(name interface{}, e entry) error {
	key, ok := name.(string)
	if !ok {
		return fmt.Errorf("%w: define name %v is not a string", ErrInvalidData, name)
	}
	value, ok := e["value"]
	if !ok {
		return fmt.Errorf("%w: define %q has no value", ErrInvalidData, key)
	}

	if baseName, ok := e["extend"]; ok {
		base, err := l.lookup(baseName)
		if err != nil {
			return err
		}
		if value, err = extend(base, value); err != nil {
			return fmt.Errorf("define %q: %w", key, err)
		}
	}

	l.defines[key] = value
	return nil
}

func (l *sceneLoader) lookup(name interface{}) (interface{}, error) {
	key, ok := name.(string)
	if !ok {
		return nil, fmt.Errorf("%w: reference %v is not a name", ErrInvalidData, name)
	}
	value, ok := l.defines[key]
	if !ok {
		return nil, fmt.Errorf("%w: undefined name %q", ErrInvalidData, key)
	}
	return value, nil
}

func extend(base, value interface{}) (interface{}, error) {
	switch b := base.(type) {
	case map[string]interface{}:
		v, ok := value.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: cannot extend a map with %T", ErrInvalidData, value)
		}
		merged := make(map[string]interface{}, len(b)+len(v))
		for k, x := range b {
			merged[k] = x
		}
		for k, x := range v {
			merged[k] = x
		}
		return merged, nil
	case []interface{}:
		v, ok := value.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: cannot extend a list with %T", ErrInvalidData, value)
		}
		return append(append([]interface{}{}, b...), v...), nil
	default:
		return nil, fmt.Errorf("%w: cannot extend %T", ErrInvalidData, base)
	}
}

func (l *sceneLoader) addCamera(e entry) error {
	width, err := intField(e, "width")
	if err != nil {
		return err
	}
	height, err := intField(e, "height")
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCameraSize, width, height)
	}

	fov, err := floatField(e, "field-of-view")
	if err != nil {
		return err
	}
	from, err := vec3Field(e, "from")
	if err != nil {
		return err
	}
	to, err := vec3Field(e, "to")
	if err != nil {
		return err
	}
	up, err := vec3Field(e, "up")
	if err != nil {
		return err
	}

	camera := geometry.NewCamera(width, height, fov)
	camera.SetTransform(core.ViewTransform(from.Vec4(1), to.Vec4(1), up.Vec4(0)))
	l.world.Camera = camera
	l.hasCamera = true
	return nil
}

func (l *sceneLoader) addLight(e entry) error {
	at, err := vec3Field(e, "at")
	if err != nil {
		return err
	}
	intensity, err := vec3Field(e, "intensity")
	if err != nil {
		return err
	}
	l.world.AddLight(material.NewPointLight(at.Vec4(1), core.NewColour(intensity[0], intensity[1], intensity[2])))
	return nil
}

func (l *sceneLoader) addShape(e entry, shape geometry.Shape) error {
	if raw, ok := e["material"]; ok {
		m, err := l.material(raw)
		if err != nil {
			return err
		}
		shape.Material = m
	}

	if raw, ok := e["transform"]; ok {
		t, err := l.transform(raw)
		if err != nil {
			return err
		}
		shape.SetTransform(t)
	}

	l.world.AddShape(shape)
	return nil
}

// material decodes a material map, or the name of a defined one, over the
// default material
func (l *sceneLoader) material(raw interface{}) (material.Material, error) {
	m := material.DefaultMaterial()

	if name, ok := raw.(string); ok {
		value, err := l.lookup(name)
		if err != nil {
			return m, err
		}
		raw = value
	}
	fields, ok := raw.(map[string]interface{})
	if !ok {
		return m, fmt.Errorf("%w: material must be a map, got %T", ErrInvalidData, raw)
	}

	if _, ok := fields["color"]; ok {
		c, err := vec3Field(fields, "color")
		if err != nil {
			return m, err
		}
		m.Colour = core.NewColour(c[0], c[1], c[2])
	}

	scalars := []struct {
		key    string
		target *float32
	}{
		{"ambient", &m.Ambient},
		{"diffuse", &m.Diffuse},
		{"specular", &m.Specular},
		{"shininess", &m.Shininess},
		{"reflective", &m.Reflective},
		{"transparency", &m.Transparency},
		{"refractive-index", &m.RefractiveIndex},
	}
	for _, s := range scalars {
		if _, ok := fields[s.key]; !ok {
			continue
		}
		v, err := floatField(fields, s.key)
		if err != nil {
			return m, err
		}
		*s.target = v
	}

	if raw, ok := fields["pattern"]; ok {
		p, err := l.pattern(raw)
		if err != nil {
			return m, err
		}
		m.PatternIndex = l.world.AddPattern(p)
	}

	if err := m.Validate(); err != nil {
		return m, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return m, nil
}

var patternKinds = map[string]material.PatternKind{
	"solid":    material.Solid,
	"stripes":  material.Stripes,
	"gradient": material.Gradient,
	"rings":    material.Rings,
	"checkers": material.Checker,
}

func (l *sceneLoader) pattern(raw interface{}) (material.Pattern, error) {
	fields, ok := raw.(map[string]interface{})
	if !ok {
		return material.Pattern{}, fmt.Errorf("%w: pattern must be a map, got %T", ErrInvalidData, raw)
	}

	typeName, err := stringField(fields, "type")
	if err != nil {
		return material.Pattern{}, err
	}
	kind, ok := patternKinds[typeName]
	if !ok {
		return material.Pattern{}, fmt.Errorf("%w: unknown pattern type %q", ErrInvalidData, typeName)
	}

	colors, ok := fields["colors"].([]interface{})
	if !ok || len(colors) == 0 || len(colors) > 2 {
		return material.Pattern{}, fmt.Errorf("%w: pattern needs one or two colors", ErrInvalidData)
	}
	var pair [2]core.Colour
	for i := range pair {
		// A single colour is used for both
		c, err := toVec3(colors[min(i, len(colors)-1)])
		if err != nil {
			return material.Pattern{}, fmt.Errorf("pattern color %d: %w", i, err)
		}
		pair[i] = core.NewColour(c[0], c[1], c[2])
	}

	p := material.NewPattern(kind, pair[0], pair[1])
	if raw, ok := fields["transform"]; ok {
		t, err := l.transform(raw)
		if err != nil {
			return p, err
		}
		p.SetTransform(t)
	}
	return p, nil
}

// transform composes a transform list, applied first to last. Items are
// operations such as [translate, x, y, z] or names of defined lists.
func (l *sceneLoader) transform(raw interface{}) (mgl32.Mat4, error) {
	ops, err := l.flattenTransform(raw, 0)
	if err != nil {
		return mgl32.Ident4(), err
	}
	return core.Chain(ops...), nil
}

// maxDefineDepth stops self-referencing transform defines
const maxDefineDepth = 16

func (l *sceneLoader) flattenTransform(raw interface{}, depth int) ([]mgl32.Mat4, error) {
	if depth > maxDefineDepth {
		return nil, fmt.Errorf("%w: transform defines nest too deeply", ErrInvalidData)
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: transform must be a list, got %T", ErrInvalidData, raw)
	}

	var ops []mgl32.Mat4
	for _, item := range items {
		switch v := item.(type) {
		case string:
			defined, err := l.lookup(v)
			if err != nil {
				return nil, err
			}
			nested, err := l.flattenTransform(defined, depth+1)
			if err != nil {
				return nil, err
			}
			ops = append(ops, nested...)
		case []interface{}:
			m, err := transformOp(v)
			if err != nil {
				return nil, err
			}
			ops = append(ops, m)
		default:
			return nil, fmt.Errorf("%w: invalid transform item %v", ErrInvalidData, item)
		}
	}
	return ops, nil
}

func transformOp(op []interface{}) (mgl32.Mat4, error) {
	if len(op) == 0 {
		return mgl32.Ident4(), fmt.Errorf("%w: empty transform", ErrInvalidData)
	}
	name, ok := op[0].(string)
	if !ok {
		return mgl32.Ident4(), fmt.Errorf("%w: transform name %v is not a string", ErrInvalidData, op[0])
	}

	args := make([]float32, len(op)-1)
	for i, raw := range op[1:] {
		v, err := toFloat(raw)
		if err != nil {
			return mgl32.Ident4(), fmt.Errorf("%s argument %d: %w", name, i, err)
		}
		args[i] = v
	}

	arity := map[string]int{
		"translate": 3, "scale": 3,
		"rotate-x": 1, "rotate-y": 1, "rotate-z": 1,
		"shear": 6,
	}
	want, known := arity[name]
	if !known {
		return mgl32.Ident4(), fmt.Errorf("%w: unknown transform %q", ErrInvalidData, name)
	}
	if len(args) != want {
		return mgl32.Ident4(), fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidData, name, want, len(args))
	}

	switch name {
	case "translate":
		return core.Translation(args[0], args[1], args[2]), nil
	case "scale":
		return core.Scaling(args[0], args[1], args[2]), nil
	case "rotate-x":
		return core.RotationX(args[0]), nil
	case "rotate-y":
		return core.RotationY(args[0]), nil
	case "rotate-z":
		return core.RotationZ(args[0]), nil
	default:
		return core.Shearing(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	}
}
