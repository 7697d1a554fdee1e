package loaders

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

func stringField(fields map[string]interface{}, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrInvalidData, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidData, key, raw)
	}
	return s, nil
}

func intField(fields map[string]interface{}, key string) (int, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrInvalidData, key)
	}
	i, ok := raw.(int)
	if !ok {
		return 0, fmt.Errorf("%w: %q must be an integer, got %T", ErrInvalidData, key, raw)
	}
	return i, nil
}

func floatField(fields map[string]interface{}, key string) (float32, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrInvalidData, key)
	}
	f, err := toFloat(raw)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", key, err)
	}
	return f, nil
}

func vec3Field(fields map[string]interface{}, key string) (mgl32.Vec3, error) {
	raw, ok := fields[key]
	if !ok {
		return mgl32.Vec3{}, fmt.Errorf("%w: missing %q", ErrInvalidData, key)
	}
	v, err := toVec3(raw)
	if err != nil {
		return v, fmt.Errorf("%q: %w", key, err)
	}
	return v, nil
}

// toFloat accepts YAML integers and floats
func toFloat(raw interface{}) (float32, error) {
	switch v := raw.(type) {
	case int:
		return float32(v), nil
	case float64:
		return float32(v), nil
	default:
		return 0, fmt.Errorf("%w: expected a number, got %v", ErrInvalidData, raw)
	}
}

func toVec3(raw interface{}) (mgl32.Vec3, error) {
	items, ok := raw.([]interface{})
	if !ok || len(items) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w: expected [x, y, z], got %v", ErrInvalidData, raw)
	}

	var v mgl32.Vec3
	for i, item := range items {
		f, err := toFloat(item)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}
